// Package session parses and replays scripted widget sessions.
//
// A script is line oriented:
//
//	# comment
//	color #3366ff
//	click 290 150
//	saturation 0.4
//	lightness 0.25
//
// "color" mirrors an external colour; the other verbs are user interactions.
package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/huewheel/internal/picker"
	"github.com/jmylchreest/huewheel/internal/security"
	"github.com/jmylchreest/huewheel/internal/wheel"
)

// MaxScriptSize caps the decompressed size of a script.
const MaxScriptSize = 4 * 1024 * 1024

// Step is one parsed script line. Exactly one of Colour and Event is set.
type Step struct {
	Line   int
	Colour string
	Event  picker.Event
}

// String implements fmt.Stringer.
func (s Step) String() string {
	if s.Event != nil {
		return s.Event.String()
	}
	return "color " + s.Colour
}

// Parse reads a script from r.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		step, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		step.Line = lineNo
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

func parseLine(line string) (Step, error) {
	fields := strings.Fields(line)
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "color", "colour":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%s takes one hex value", verb)
		}
		return Step{Colour: args[0]}, nil

	case "click":
		// Accept both "click 10 20" and "click 10,20".
		if len(args) == 1 {
			args = strings.Split(args[0], ",")
		}
		if len(args) != 2 {
			return Step{}, fmt.Errorf("click takes x and y")
		}
		p, err := ParsePoint(args[0], args[1])
		if err != nil {
			return Step{}, err
		}
		return Step{Event: picker.Click{At: p}}, nil

	case "saturation", "lightness":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%s takes one value", verb)
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Step{}, fmt.Errorf("invalid %s %q: %w", verb, args[0], err)
		}
		if verb == "saturation" {
			return Step{Event: picker.SetSaturation{Value: v}}, nil
		}
		return Step{Event: picker.SetLightness{Value: v}}, nil

	default:
		return Step{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

// ParsePoint parses two coordinates.
func ParsePoint(xs, ys string) (wheel.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return wheel.Point{}, fmt.Errorf("invalid x coordinate %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return wheel.Point{}, fmt.Errorf("invalid y coordinate %q: %w", ys, err)
	}
	return wheel.Point{X: x, Y: y}, nil
}

// ParseFile opens and parses the script at path. Files ending in .xz are
// decompressed on the fly.
func ParseFile(path string) ([]Step, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Parse(rc)
}

// Open returns a reader over the script at path.
func Open(path string) (io.ReadCloser, error) {
	if err := security.ValidateInputFile(path); err != nil {
		return nil, fmt.Errorf("invalid script path: %w", err)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified script path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}

	if !strings.EqualFold(filepath.Ext(path), ".xz") {
		return file, nil
	}

	xzr, err := xz.NewReader(bufio.NewReader(file))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	return &readCloser{
		Reader: security.NewLimitedReader(xzr, MaxScriptSize),
		closer: file,
	}, nil
}

// readCloser pairs a decompressing reader with the file underneath it.
type readCloser struct {
	io.Reader
	closer io.Closer
}

func (r *readCloser) Close() error {
	return r.closer.Close()
}
