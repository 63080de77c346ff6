package cli

import (
	"strings"
	"testing"
)

func TestTableAddRowNormalises(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})

	table.AddRow([]string{"Red"})
	table.AddRow([]string{"Blue", "#0000ff", "extra"})

	if len(table.rows[0]) != 2 || table.rows[0][1] != "" {
		t.Errorf("short row should be padded, got %q", table.rows[0])
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("long row should be truncated, got %q", table.rows[1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})
	table.AddRow([]string{"Cyan", "#00ffff"})
	table.AddRow([]string{"Magenta", "#ff00ff"})

	want := strings.Join([]string{
		"Name     Hex",
		"-------  -------",
		"Cyan     #00ffff",
		"Magenta  #ff00ff",
		"",
	}, "\n")

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderIgnoresEscapes(t *testing.T) {
	swatch := "\033[48;2;255;0;0m  \033[0m"
	table := NewTable([]string{"", "Hex"})
	table.AddRow([]string{swatch, "#ff0000"})

	lines := strings.Split(table.Render(), "\n")
	if lines[1] != "--  -------" {
		t.Errorf("rule = %q, want widths from visible text", lines[1])
	}
	if lines[2] != swatch+"  #ff0000" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() with no headers = %q, want empty", got)
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"\033[0m", 0},
		{"\033[38;2;1;2;3mhi\033[0m", 2},
		{"▀▄", 2},
	}
	for _, tt := range tests {
		if got := visibleLen(tt.in); got != tt.want {
			t.Errorf("visibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
