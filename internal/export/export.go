// Package export renders canvases to raster images.
package export

import (
	"fmt"
	"image"
	"sync"

	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/glyph"
	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Size of one cell in pixels at scale 1.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	MinScale = 1
	MaxScale = 16
)

var (
	fontOnce sync.Once
	fontErr  error
	ttf      *truetype.Font
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		ttf, fontErr = truetype.Parse(gomono.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("failed to parse font: %w", fontErr)
		}
	})
	return ttf, fontErr
}

// ClampScale limits scale to [MinScale, MaxScale].
func ClampScale(scale int) int {
	return max(MinScale, min(scale, MaxScale))
}

// Image draws g with each cell as a CellWidth x CellHeight block multiplied by
// scale. Empty cells stay transparent.
func Image(g *canvas.Grid, scale int) (image.Image, error) {
	dc, err := draw(g, ClampScale(scale))
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// PNG writes g to path as a PNG image.
func PNG(path string, g *canvas.Grid, scale int) error {
	scale = ClampScale(scale)
	dc, err := draw(g, scale)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("export '%s': %w", path, err)
	}
	logger.Infof("Export: wrote %dx%d canvas to %s at scale %d", g.Width(), g.Height(), path, scale)
	return nil
}

func draw(g *canvas.Grid, scale int) (*gg.Context, error) {
	f, err := loadFont()
	if err != nil {
		return nil, err
	}
	cw := float64(CellWidth * scale)
	ch := float64(CellHeight * scale)

	dc := gg.NewContext(g.Width()*CellWidth*scale, g.Height()*CellHeight*scale)
	face := truetype.NewFace(f, &truetype.Options{
		Size:    ch * 0.8,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	dc.SetFontFace(face)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t, ok := g.Get(x, y).Tile()
			if !ok {
				continue
			}
			px, py := float64(x)*cw, float64(y)*ch

			dc.SetColor(t.BG)
			dc.DrawRectangle(px, py, cw, ch)
			dc.Fill()

			r := glyph.Rune(t.Glyph)
			if r == ' ' {
				continue
			}
			dc.SetColor(t.FG)
			dc.DrawStringAnchored(string(r), px+cw/2, py+ch/2, 0.5, 0.5)
		}
	}
	return dc, nil
}
