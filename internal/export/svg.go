package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/bars"
)

const (
	backgroundColor = "#0a0a0a"
	barColor        = "#8888ff"
	highlightColor  = "#00ff00"
	pivotColor      = "#008080"
)

// fillFor returns the fill color of a bar in exported images.
func fillFor(b bars.Bar) string {
	if !b.Highlighted {
		return barColor
	}
	switch b.Color {
	case "", "green":
		return highlightColor
	case "teal":
		return pivotColor
	default:
		return b.Color
	}
}

// BarsToSVG renders the chart as an SVG document of the given pixel size.
func BarsToSVG(c *bars.Collection, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, backgroundColor))

	for _, r := range layout(c, width, height) {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" data-value="%d"/>
`, r.x, r.y, r.w, r.h, r.fill, r.value))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

type rect struct {
	x, y, w, h float64
	fill       string
	value      int
}

// layout places one rectangle per bar, bottom aligned, with a one-pixel gap
// when there is room for it.
func layout(c *bars.Collection, width, height int) []rect {
	n := c.Len()
	if n == 0 || width <= 0 || height <= 0 {
		return nil
	}

	slot := float64(width) / float64(n)
	gap := 0.0
	if slot >= 3 {
		gap = 1
	}

	rects := make([]rect, 0, n)
	for i := 0; i < n; i++ {
		b := c.At(i)
		h := float64(height) * float64(b.Height) / 100
		rects = append(rects, rect{
			x:     float64(i) * slot,
			y:     float64(height) - h,
			w:     slot - gap,
			h:     h,
			fill:  fillFor(b),
			value: b.Value,
		})
	}
	return rects
}
