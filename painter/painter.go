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
package painter

import (
	"github.com/timburks/gopaint/canvas"
	gott "github.com/timburks/gopaint/types"
)

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}

// The Painter turns user intents into changes to a Canvas.
type Painter struct {
	canvas   *canvas.Canvas
	cursor   gott.Point // Col is x, Row is y
	tools    ToolState
	renderer gott.Renderer // notified after every change; may be nil
}

// NewPainter centers the cursor on the canvas and selects the default tools.
func NewPainter(c *canvas.Canvas) *Painter {
	return &Painter{
		canvas: c,
		cursor: gott.Point{Col: c.Width() / 2, Row: c.Height() / 2},
		tools:  DefaultTools(),
	}
}

func (p *Painter) SetRenderer(r gott.Renderer) {
	p.renderer = r
}

func (p *Painter) GetCanvas() *canvas.Canvas {
	return p.canvas
}

func (p *Painter) GetCursor() gott.Point {
	return p.cursor
}

func (p *Painter) GetTools() ToolState {
	return p.tools
}

// MoveCursor moves by (dx, dy), clamping each axis to the canvas.
// With the pen down, the new position is painted if the cursor moved.
func (p *Painter) MoveCursor(dx, dy int) {
	col := clipToRange(p.cursor.Col+dx, 0, p.canvas.Width()-1)
	row := clipToRange(p.cursor.Row+dy, 0, p.canvas.Height()-1)
	if col == p.cursor.Col && row == p.cursor.Row {
		return
	}
	p.cursor = gott.Point{Row: row, Col: col}
	if p.tools.PenDown {
		p.PaintAtCursor()
	}
}

func (p *Painter) Move(direction int) {
	switch direction {
	case gott.MoveUp:
		p.MoveCursor(0, -1)
	case gott.MoveDown:
		p.MoveCursor(0, 1)
	case gott.MoveLeft:
		p.MoveCursor(-1, 0)
	case gott.MoveRight:
		p.MoveCursor(1, 0)
	}
}

func (p *Painter) PaintAtCursor() {
	x, y := p.cursor.Col, p.cursor.Row
	if !p.canvas.Contains(x, y) {
		return
	}
	p.canvas.Set(x, y, canvas.Cell{Ch: p.tools.Brush(), Color: p.tools.Color})
	if p.renderer != nil {
		p.renderer.RenderCell(x, y)
	}
}

func (p *Painter) TogglePen() {
	p.tools = p.tools.WithPenToggled()
}

func (p *Painter) CycleBrush() {
	p.tools = p.tools.WithNextBrush()
}

func (p *Painter) EnterEraser() {
	p.tools = p.tools.WithEraser()
}

func (p *Painter) CycleColor() {
	p.tools = p.tools.WithNextColor()
}

// SetColor selects a palette color directly. Indices outside the palette are ignored.
func (p *Painter) SetColor(i int) bool {
	var ok bool
	p.tools, ok = p.tools.WithColor(i)
	return ok
}

// ClearCanvas blanks every cell in the current color.
func (p *Painter) ClearCanvas() {
	p.canvas.Fill(p.tools.Color)
	if p.renderer != nil {
		p.renderer.RenderAll()
	}
}

// Refreshed is called after the canvas changed behind the painter's back (a load).
func (p *Painter) Refreshed() {
	if p.renderer != nil {
		p.renderer.RenderAll()
	}
}
