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
package window

import (
	"fmt"

	"github.com/timburks/gopaint/canvas"
	"github.com/timburks/gopaint/painter"
	gott "github.com/timburks/gopaint/types"
)

// The Window draws the state of a Painter onto a Display.
type Window struct {
	painter  *painter.Painter
	display  gott.Display
	origin   gott.Point // display position of canvas cell (0,0)
	fileName string     // named in the tips line
	message  string     // replaces the tips line until cleared
}

// NewWindow places the canvas below the top status lines and registers
// the window as the painter's renderer.
func NewWindow(p *painter.Painter, d gott.Display, fileName string) *Window {
	w := &Window{
		painter:  p,
		display:  d,
		origin:   gott.Point{Row: gott.StatusLinesTop, Col: 0},
		fileName: fileName,
	}
	p.SetRenderer(w)
	return w
}

// CanvasSize returns the canvas size that fits a display of the given size.
func CanvasSize(display gott.Size) gott.Size {
	return gott.Size{
		Rows: min(display.Rows-gott.StatusLinesTop-gott.StatusLinesBottom, canvas.MaxHeight),
		Cols: min(display.Cols, canvas.MaxWidth),
	}
}

func (w *Window) drawCell(x, y int, highlighted bool) {
	cell, ok := w.painter.GetCanvas().Get(x, y)
	if !ok {
		return
	}
	w.display.DrawCell(w.origin.Col+x, w.origin.Row+y, cell.Ch, cell.Color, highlighted)
}

// RenderCell redraws one canvas cell without highlight.
func (w *Window) RenderCell(x, y int) {
	w.drawCell(x, y, false)
}

// RenderAll redraws every canvas cell.
func (w *Window) RenderAll() {
	c := w.painter.GetCanvas()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			w.drawCell(x, y, false)
		}
	}
}

// RenderCursor draws the cell under the cursor, highlighted or plain.
func (w *Window) RenderCursor(highlighted bool) {
	cursor := w.painter.GetCursor()
	w.drawCell(cursor.Col, cursor.Row, highlighted)
}

func (w *Window) SetMessage(message string) {
	w.message = message
}

func (w *Window) GetMessage() string {
	return w.message
}

func (w *Window) computeToolsText() string {
	tools := w.painter.GetTools()
	pen := "UP"
	if tools.PenDown {
		pen = "DOWN"
	}
	c := w.painter.GetCanvas()
	return fmt.Sprintf("Terminal Paint :D  |  Brush: '%c'  |  Color: %s  |  Pen: %s  |  Canvas: %dx%d",
		tools.Brush(), canvas.ColorName(tools.Color), pen, c.Width(), c.Height())
}

func (w *Window) computeHelpText() string {
	cursor := w.painter.GetCursor()
	return fmt.Sprintf("Position: (%d,%d)  |  Movement: Arrow keys  |  "+
		"Paint: Space  |  Pen: Enter  |  Tools: B/C/E/X  |  "+
		"Colors: 0-7  |  File: S/L  |  Quit: Q", cursor.Col, cursor.Row)
}

func (w *Window) computeMessageText() string {
	if w.message != "" {
		return w.message
	}
	return fmt.Sprintf("Tips: Enter toggles pen mode for continuous painting. "+
		"Files save to '%s'. Use 0-7 for quick color selection.", w.fileName)
}

// RenderStatus redraws the status lines from the current tools and cursor.
func (w *Window) RenderStatus() {
	w.display.DrawStatusLine(gott.StatusLineTools, w.computeToolsText())
	w.display.DrawStatusLine(gott.StatusLineHelp, w.computeHelpText())
	w.display.DrawStatusLine(gott.StatusLineMessage, w.computeMessageText())
}

// Refresh finishes a frame: status lines, cursor highlight, flush.
func (w *Window) Refresh() {
	w.RenderStatus()
	w.RenderCursor(true)
	w.display.Flush()
}
