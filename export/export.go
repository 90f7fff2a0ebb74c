//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/timburks/gopaint/canvas"
)

// DefaultFileName is used when no export file is configured.
const DefaultFileName = "paint_save.png"

// Size of one canvas cell in the exported image, in pixels.
const (
	CellWidth  = 8
	CellHeight = 16
	fontSize   = 13.0
)

func newContext(c *canvas.Canvas) (*gg.Context, error) {
	dc := gg.NewContext(c.Width()*CellWidth, c.Height()*CellHeight)
	dc.SetColor(color.Black)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			cell, _ := c.Get(x, y)
			if cell.Ch < 33 || cell.Ch > 126 {
				continue
			}
			dc.SetColor(canvas.ColorRGBA(cell.Color))
			dc.DrawStringAnchored(string(rune(cell.Ch)),
				float64(x*CellWidth)+CellWidth/2.0,
				float64(y*CellHeight)+CellHeight/2.0,
				0.5, 0.5)
		}
	}
	return dc, nil
}

// Encode writes a PNG picture of the canvas, one character cell per
// CellWidth x CellHeight block, drawn on black.
func Encode(w io.Writer, c *canvas.Canvas) error {
	dc, err := newContext(c)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// PNG writes the picture of the canvas to the named file.
func PNG(path string, c *canvas.Canvas) error {
	dc, err := newContext(c)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}
