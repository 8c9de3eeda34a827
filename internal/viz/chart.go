package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/bars"
)

// eighths of a cell, empty to full
var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderChart draws one column per bar, rows rows tall. Bar heights are
// percentages, so a 100% bar fills every row.
func RenderChart(c *bars.Collection, rows int, theme Theme) string {
	if rows < 1 {
		rows = 1
	}
	if c.Len() == 0 {
		return Subtle.Render("(empty, press r to randomize)")
	}

	styles := make([]lipgloss.Style, c.Len())
	levels := make([]int, c.Len())
	for i := 0; i < c.Len(); i++ {
		b := c.At(i)
		levels[i] = Level(b.Height, rows)
		color := theme.Bar
		if b.Highlighted {
			color = theme.ColorFor(b.Color)
		}
		styles[i] = lipgloss.NewStyle().Foreground(color)
	}

	var sb strings.Builder
	for row := rows - 1; row >= 0; row-- {
		for i, level := range levels {
			sb.WriteString(styles[i].Render(string(cell(level, row))))
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Level converts a height percentage to eighths of a cell over rows rows.
func Level(height, rows int) int {
	if height <= 0 {
		return 0
	}
	if height > 100 {
		height = 100
	}
	level := height * rows * 8 / 100
	if level == 0 {
		level = 1
	}
	return level
}

func cell(level, row int) rune {
	fill := level - row*8
	if fill <= 0 {
		return blocks[0]
	}
	if fill >= 8 {
		return blocks[8]
	}
	return blocks[fill]
}

// Sortedness is the fraction of adjacent pairs already in order.
func Sortedness(c *bars.Collection) float64 {
	if c.Len() < 2 {
		return 1
	}
	ordered := 0
	for i := 1; i < c.Len(); i++ {
		if c.At(i-1).Value <= c.At(i).Value {
			ordered++
		}
	}
	return float64(ordered) / float64(c.Len()-1)
}
