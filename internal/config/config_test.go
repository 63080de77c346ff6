package config

import (
	"errors"
	"testing"

	"github.com/jmylchreest/huewheel/internal/wheel"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func float(v float64) *float64 { return &v }

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		useEnv    bool
		overrides Overrides
		want      wheel.Geometry
		wantErr   bool
	}{
		{
			name: "defaults",
			want: wheel.DefaultGeometry(),
		},
		{
			name:   "env ignored unless enabled",
			env:    map[string]string{EnvSize: "500"},
			useEnv: false,
			want:   wheel.DefaultGeometry(),
		},
		{
			name:   "env applied",
			env:    map[string]string{EnvSize: "400", EnvInnerRadius: " 120 ", EnvPixelRatio: "2"},
			useEnv: true,
			want:   wheel.Geometry{DisplaySize: 400, InnerRadius: 120, PixelRatio: 2},
		},
		{
			name:      "overrides beat env",
			env:       map[string]string{EnvSize: "400", EnvPixelRatio: "2"},
			useEnv:    true,
			overrides: Overrides{PixelRatio: float(3)},
			want:      wheel.Geometry{DisplaySize: 400, InnerRadius: 80, PixelRatio: 3},
		},
		{
			name:    "bad env value",
			env:     map[string]string{EnvPixelRatio: "retina"},
			useEnv:  true,
			wantErr: true,
		},
		{
			name:      "zero override requests a full disc",
			env:       map[string]string{EnvInnerRadius: "40"},
			useEnv:    true,
			overrides: Overrides{InnerRadius: float(0)},
			want:      wheel.Geometry{DisplaySize: 300, InnerRadius: 0, PixelRatio: 1},
		},
		{
			name:      "invalid result",
			overrides: Overrides{InnerRadius: float(200)},
			wantErr:   true,
		},
		{
			name:      "oversized backing raster",
			overrides: Overrides{DisplaySize: float(1e12)},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder().WithLookup(envMap(tt.env)).WithOverrides(tt.overrides)
			if tt.useEnv {
				b = b.WithEnvConfig()
			}

			got, err := b.Build()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Build() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildInvalidGeometryError(t *testing.T) {
	_, err := NewBuilder().WithOverrides(Overrides{DisplaySize: float(10), InnerRadius: float(5)}).Build()
	if !errors.Is(err, wheel.ErrInvalidGeometry) {
		t.Errorf("Build() error = %v, want ErrInvalidGeometry", err)
	}
}
