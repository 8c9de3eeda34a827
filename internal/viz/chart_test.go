package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/bars"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		height, rows, expected int
	}{
		{100, 4, 32},
		{50, 4, 16},
		{0, 4, 0},
		{1, 4, 1},
		{150, 2, 16},
	}

	for _, tt := range tests {
		if got := Level(tt.height, tt.rows); got != tt.expected {
			t.Errorf("Level(%d, %d): expected %d, got %d", tt.height, tt.rows, tt.expected, got)
		}
	}
}

func TestCell(t *testing.T) {
	if cell(12, 0) != '█' {
		t.Error("expected full block in bottom row")
	}
	if cell(12, 1) != '▄' {
		t.Errorf("expected half block, got %q", cell(12, 1))
	}
	if cell(12, 2) != ' ' {
		t.Error("expected empty cell above the bar")
	}
}

func TestRenderChartRows(t *testing.T) {
	c := bars.New([]int{1, 5, 10})
	out := RenderChart(c, 5, ThemeMinimal)

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "█") {
		t.Error("expected the tallest bar to reach the top row")
	}
}

func TestRenderChartEmpty(t *testing.T) {
	out := RenderChart(bars.New(nil), 5, ThemeMinimal)
	if !strings.Contains(out, "randomize") {
		t.Errorf("expected hint for empty chart, got %q", out)
	}
}

func TestSortedness(t *testing.T) {
	if got := Sortedness(bars.New([]int{1, 2, 3})); got != 1 {
		t.Errorf("expected 1, got %f", got)
	}
	if got := Sortedness(bars.New([]int{3, 2, 1})); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
	if got := Sortedness(bars.New([]int{1, 3, 2})); got != 0.5 {
		t.Errorf("expected 0.5, got %f", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "cyberpunk" {
		t.Error("expected fallback to cyberpunk")
	}
	if NextTheme("sunset").Name != "cyberpunk" {
		t.Error("expected wrap around")
	}
	if ThemeOcean.ColorFor("teal") != ThemeOcean.Pivot {
		t.Error("expected teal to map to the pivot color")
	}
	if ThemeOcean.ColorFor("") != ThemeOcean.Highlight {
		t.Error("expected default highlight color")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}
