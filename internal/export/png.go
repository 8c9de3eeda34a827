package export

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/san-kum/sortviz/internal/bars"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const captionHeight = 24

// SavePNG draws the chart with an optional caption and writes it to path.
func SavePNG(path string, c *bars.Collection, width, height int, caption string) error {
	if c.Len() == 0 {
		return fmt.Errorf("nothing to export")
	}

	dc, err := drawPNG(c, width, height, caption)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func drawPNG(c *bars.Collection, width, height int, caption string) (*gg.Context, error) {
	chartTop := 0
	if caption != "" {
		chartTop = captionHeight
	}

	dc := gg.NewContext(width, height+chartTop)
	dc.SetHexColor(backgroundColor)
	dc.Clear()

	if caption != "" {
		ttfFont, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %v", err)
		}
		face := truetype.NewFace(ttfFont, &truetype.Options{
			Size:    14,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		dc.SetFontFace(face)
		dc.SetHexColor("#ffffff")
		dc.DrawStringAnchored(caption, 8, captionHeight/2, 0, 0.5)
	}

	for _, r := range layout(c, width, height) {
		dc.SetHexColor(r.fill)
		dc.DrawRectangle(r.x, r.y+float64(chartTop), r.w, r.h)
		dc.Fill()
	}
	return dc, nil
}
