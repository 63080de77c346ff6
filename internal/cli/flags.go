package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/huewheel/internal/session"
	"github.com/jmylchreest/huewheel/internal/wheel"
)

// pointList is a repeatable "X,Y" flag.
type pointList []wheel.Point

var _ pflag.Value = (*pointList)(nil)

func (p *pointList) String() string {
	parts := make([]string, len(*p))
	for i, pt := range *p {
		parts[i] = fmt.Sprintf("%g,%g", pt.X, pt.Y)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Set appends one point; pflag calls it once per flag occurrence.
func (p *pointList) Set(value string) error {
	xs, ys, ok := strings.Cut(value, ",")
	if !ok {
		return fmt.Errorf("expected X,Y, got %q", value)
	}
	pt, err := session.ParsePoint(xs, ys)
	if err != nil {
		return err
	}
	*p = append(*p, pt)
	return nil
}

func (p *pointList) Type() string {
	return "x,y"
}
