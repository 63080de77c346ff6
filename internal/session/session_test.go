package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/huewheel/internal/picker"
	"github.com/jmylchreest/huewheel/internal/wheel"
)

const sampleScript = `# warm start
color #ff8800

click 265 150
// ignored
click 10,10
saturation 0.5
LIGHTNESS 0.25
`

func TestParse(t *testing.T) {
	steps, err := Parse(strings.NewReader(sampleScript))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Step{
		{Line: 2, Colour: "#ff8800"},
		{Line: 4, Event: picker.Click{At: wheel.Point{X: 265, Y: 150}}},
		{Line: 6, Event: picker.Click{At: wheel.Point{X: 10, Y: 10}}},
		{Line: 7, Event: picker.SetSaturation{Value: 0.5}},
		{Line: 8, Event: picker.SetLightness{Value: 0.25}},
	}
	if len(steps) != len(want) {
		t.Fatalf("Parse() returned %d steps, want %d", len(steps), len(want))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, steps[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{name: "unknown verb", script: "spin 3", want: `line 1: unknown command "spin"`},
		{name: "missing colour", script: "\ncolor", want: "line 2: color takes one hex value"},
		{name: "bad click", script: "click 1", want: "line 1: click takes x and y"},
		{name: "bad coordinate", script: "click a 2", want: `line 1: invalid x coordinate "a"`},
		{name: "bad slider", script: "saturation lots", want: `line 1: invalid saturation "lots"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.script))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParseFilePlainAndXz(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "session.txt")
	if err := os.WriteFile(plain, []byte(sampleScript), 0o600); err != nil {
		t.Fatal(err)
	}

	var compressed bytes.Buffer
	w, err := xz.NewWriter(&compressed)
	if err != nil {
		t.Fatalf("xz.NewWriter() error = %v", err)
	}
	if _, err := w.Write([]byte(sampleScript)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	packed := filepath.Join(dir, "session.txt.xz")
	if err := os.WriteFile(packed, compressed.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{plain, packed} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			steps, err := ParseFile(path)
			if err != nil {
				t.Fatalf("ParseFile() error = %v", err)
			}
			if len(steps) != 5 {
				t.Errorf("got %d steps, want 5", len(steps))
			}
		})
	}
}

func TestParseFileRejectsCorruptXz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xz")
	if err := os.WriteFile(path, []byte("not xz data"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(path); err == nil {
		t.Error("ParseFile() should fail on corrupt xz input")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ParseFile() should fail for a missing file")
	}
}

func TestRun(t *testing.T) {
	var notified []picker.Notification
	p, err := picker.New(wheel.DefaultGeometry(), picker.WithOnChange(func(n picker.Notification) {
		notified = append(notified, n)
	}))
	if err != nil {
		t.Fatal(err)
	}

	steps, err := Parse(strings.NewReader(sampleScript))
	if err != nil {
		t.Fatal(err)
	}
	results := Run(p, steps)

	if len(results) != len(steps) {
		t.Fatalf("Run() returned %d results, want %d", len(results), len(steps))
	}

	if r := results[0]; !r.Accepted || r.Notification != nil || r.State.Hex != "#ff8800" {
		t.Errorf("colour step result = %+v", r)
	}
	if r := results[1]; !r.Accepted || r.Notification == nil || r.State.Hue != 180 {
		t.Errorf("click step result = %+v", r)
	}
	if r := results[2]; r.Accepted || r.Notification != nil {
		t.Errorf("off-ring click should be rejected: %+v", r)
	}
	if r := results[4]; r.State.Hue != 180 || r.State.Lightness != 0.25 || r.State.Saturation != 0.5 {
		t.Errorf("final state = %+v", r.State)
	}

	if len(notified) != 3 {
		t.Fatalf("callback fired %d times, want 3", len(notified))
	}
	for i, r := range []Result{results[1], results[3], results[4]} {
		if *r.Notification != notified[i] {
			t.Errorf("result notification %+v does not match callback %+v", *r.Notification, notified[i])
		}
	}
}
