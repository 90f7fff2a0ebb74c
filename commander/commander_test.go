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
package commander

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/gopaint/canvas"
	"github.com/timburks/gopaint/codec"
	"github.com/timburks/gopaint/painter"
	"github.com/timburks/gopaint/screen"
	gott "github.com/timburks/gopaint/types"
	"github.com/timburks/gopaint/window"
)

type fixture struct {
	commander *Commander
	painter   *painter.Painter
	window    *window.Window
	display   *screen.Memory
	dir       string
}

func setup(t *testing.T, width, height int) *fixture {
	c, err := canvas.New(width, height)
	require.NoError(t, err)
	d := screen.NewMemory(200, height+gott.StatusLinesTop+gott.StatusLinesBottom)
	p := painter.NewPainter(c)
	w := window.NewWindow(p, d, codec.DefaultFileName)
	dir := t.TempDir()
	cmd := NewCommander(p, w, filepath.Join(dir, codec.DefaultFileName), filepath.Join(dir, "shot.png"))
	w.RenderAll()
	w.Refresh()
	return &fixture{commander: cmd, painter: p, window: w, display: d, dir: dir}
}

// send delivers an event the way the main loop does.
func (f *fixture) send(t *testing.T, event *gott.Event) {
	f.commander.ProcessEvent(event)
	f.window.Refresh()
}

func (f *fixture) key(t *testing.T, k gott.Key) {
	f.send(t, &gott.Event{Type: gott.EventKey, Key: k})
}

func (f *fixture) ch(t *testing.T, chars string) {
	for _, ch := range chars {
		f.send(t, &gott.Event{Type: gott.EventKey, Ch: ch})
	}
}

func (f *fixture) cell(t *testing.T, x, y int) canvas.Cell {
	cell, ok := f.painter.GetCanvas().Get(x, y)
	require.True(t, ok)
	return cell
}

func TestEndToEnd(t *testing.T) {
	f := setup(t, 5, 3)
	assert.Equal(t, gott.Point{Col: 2, Row: 1}, f.painter.GetCursor())

	f.key(t, gott.KeySpace)
	assert.Equal(t, canvas.Cell{Ch: '#', Color: 7}, f.cell(t, 2, 1))

	f.ch(t, "2")
	f.key(t, gott.KeySpace)
	assert.Equal(t, canvas.Cell{Ch: '#', Color: 2}, f.cell(t, 2, 1))

	f.ch(t, "s")
	saved, err := os.ReadFile(f.commander.GetFileName())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(saved), "5 3\n"))

	f.ch(t, "x")
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, canvas.Cell{Ch: ' ', Color: 2}, f.cell(t, x, y))
		}
	}

	f.ch(t, "l")
	assert.Equal(t, canvas.Cell{Ch: '#', Color: 2}, f.cell(t, 2, 1))
	// the saved file covers the whole canvas, so every other cell
	// returns to the blank it held when it was saved
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if x == 2 && y == 1 {
				continue
			}
			assert.Equal(t, canvas.Cell{Ch: ' ', Color: 7}, f.cell(t, x, y))
		}
	}
}

func TestMovementKeys(t *testing.T) {
	f := setup(t, 5, 5)
	f.key(t, gott.KeyArrowUp)
	assert.Equal(t, gott.Point{Col: 2, Row: 1}, f.painter.GetCursor())
	f.key(t, gott.KeyArrowLeft)
	assert.Equal(t, gott.Point{Col: 1, Row: 1}, f.painter.GetCursor())
	f.key(t, gott.KeyArrowDown)
	f.key(t, gott.KeyArrowDown)
	assert.Equal(t, gott.Point{Col: 1, Row: 3}, f.painter.GetCursor())
	f.key(t, gott.KeyArrowRight)
	assert.Equal(t, gott.Point{Col: 2, Row: 3}, f.painter.GetCursor())
}

func TestPenKeyPaintsWhileMoving(t *testing.T) {
	f := setup(t, 5, 3)
	f.key(t, gott.KeyEnter)
	f.key(t, gott.KeyArrowRight)
	f.key(t, gott.KeyArrowRight)
	f.key(t, gott.KeyArrowRight) // wall
	assert.Equal(t, byte(' '), f.cell(t, 2, 1).Ch)
	assert.Equal(t, byte('#'), f.cell(t, 3, 1).Ch)
	assert.Equal(t, byte('#'), f.cell(t, 4, 1).Ch)
	f.ch(t, "\r")
	assert.False(t, f.painter.GetTools().PenDown)
}

func TestToolKeys(t *testing.T) {
	f := setup(t, 5, 3)
	f.ch(t, "b")
	assert.Equal(t, byte('*'), f.painter.GetTools().Brush())
	f.ch(t, "B")
	assert.Equal(t, byte('@'), f.painter.GetTools().Brush())
	f.ch(t, "E")
	assert.True(t, f.painter.GetTools().Erasing())
	f.ch(t, "e")
	assert.True(t, f.painter.GetTools().Erasing())
	f.ch(t, "b")
	assert.Equal(t, byte('*'), f.painter.GetTools().Brush())

	f.ch(t, "c")
	assert.Equal(t, 0, f.painter.GetTools().Color)
	f.ch(t, "C") // color cycling is lowercase only
	assert.Equal(t, 0, f.painter.GetTools().Color)
	f.ch(t, "5")
	assert.Equal(t, 5, f.painter.GetTools().Color)
	f.ch(t, "8")
	assert.Equal(t, 5, f.painter.GetTools().Color)
}

func TestQuitAliases(t *testing.T) {
	for _, event := range []*gott.Event{
		{Type: gott.EventKey, Ch: 'q'},
		{Type: gott.EventKey, Ch: 'Q'},
		{Type: gott.EventKey, Key: gott.KeyEsc},
	} {
		f := setup(t, 5, 3)
		require.True(t, f.commander.IsRunning())
		f.send(t, event)
		assert.False(t, f.commander.IsRunning(), "%+v", event)
	}
}

func TestUnboundEventsAreIgnored(t *testing.T) {
	f := setup(t, 5, 3)
	before := f.painter.GetCanvas().String()
	tools := f.painter.GetTools()
	f.ch(t, "zZ9!")
	f.send(t, &gott.Event{Type: gott.EventResize})
	f.send(t, &gott.Event{Type: gott.EventKey, Key: gott.KeyUnsupported})
	assert.Equal(t, before, f.painter.GetCanvas().String())
	assert.Equal(t, tools, f.painter.GetTools())
	assert.True(t, f.commander.IsRunning())
}

func TestResizeRedrawsCanvas(t *testing.T) {
	f := setup(t, 5, 3)
	f.key(t, gott.KeySpace)
	f.key(t, gott.KeyArrowLeft)
	// a resized terminal comes back blank
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			f.display.DrawCell(x, y+gott.StatusLinesTop, ' ', 0, false)
		}
	}
	f.send(t, &gott.Event{Type: gott.EventResize})
	assert.Equal(t, screen.MemoryCell{Ch: '#', Color: 7}, f.display.CellAt(2, 1+gott.StatusLinesTop))
	assert.Equal(t, screen.MemoryCell{Ch: ' ', Color: 7}, f.display.CellAt(0, gott.StatusLinesTop))
	assert.True(t, f.display.CellAt(1, 1+gott.StatusLinesTop).Highlighted)
	assert.Equal(t, 5, f.painter.GetCanvas().Width())
	assert.Equal(t, 3, f.painter.GetCanvas().Height())
}

func TestCursorHighlightFollowsEvents(t *testing.T) {
	f := setup(t, 5, 3)
	row := func(y int) int { return y + gott.StatusLinesTop }
	assert.True(t, f.display.CellAt(2, row(1)).Highlighted)
	f.key(t, gott.KeyArrowLeft)
	assert.False(t, f.display.CellAt(2, row(1)).Highlighted)
	assert.True(t, f.display.CellAt(1, row(1)).Highlighted)
	f.ch(t, "x")
	assert.True(t, f.display.CellAt(1, row(1)).Highlighted)
	assert.False(t, f.display.CellAt(0, row(1)).Highlighted)
}

func TestStatusFollowsEvents(t *testing.T) {
	f := setup(t, 5, 3)
	f.ch(t, "3")
	f.key(t, gott.KeyArrowUp)
	assert.Contains(t, f.display.StatusLine(gott.StatusLineTools), "Color: YELLOW")
	assert.Contains(t, f.display.StatusLine(gott.StatusLineHelp), "Position: (2,0)")
	f.ch(t, "s")
	assert.Contains(t, f.display.StatusLine(gott.StatusLineMessage), "Saved")
	f.key(t, gott.KeyArrowDown)
	assert.Contains(t, f.display.StatusLine(gott.StatusLineMessage), "Tips:")
}

func TestLoadMissingFileIsNoOp(t *testing.T) {
	f := setup(t, 5, 3)
	f.key(t, gott.KeySpace)
	before := f.painter.GetCanvas().String()
	f.ch(t, "L")
	assert.Equal(t, before, f.painter.GetCanvas().String())
	assert.True(t, f.commander.IsRunning())
	assert.Empty(t, f.window.GetMessage())
}

func TestLoadRedrawsCanvas(t *testing.T) {
	f := setup(t, 5, 3)
	require.NoError(t, os.WriteFile(f.commander.GetFileName(), []byte("2 1\n1,65 2,66\n"), 0644))
	f.ch(t, "l")
	assert.Equal(t, screen.MemoryCell{Ch: 'A', Color: 1}, f.display.CellAt(0, gott.StatusLinesTop))
	assert.Equal(t, screen.MemoryCell{Ch: 'B', Color: 2}, f.display.CellAt(1, gott.StatusLinesTop))
	assert.Contains(t, f.window.GetMessage(), "Loaded")
}

func TestSaveToUnwritableFileIsNoOp(t *testing.T) {
	f := setup(t, 5, 3)
	result := f.commander.Save(filepath.Join(f.dir, "missing", "x.txt"))
	assert.Equal(t, codec.StatusFailed, result.Status)
	assert.True(t, f.commander.IsRunning())
}

func TestExportKey(t *testing.T) {
	f := setup(t, 5, 3)
	f.ch(t, "p")
	_, err := os.Stat(filepath.Join(f.dir, "shot.png"))
	assert.NoError(t, err)
}
