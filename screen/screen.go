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
package screen

import (
	"errors"

	"github.com/nsf/termbox-go"

	"github.com/timburks/gopaint/canvas"
	gott "github.com/timburks/gopaint/types"
)

var ErrTooSmall = errors.New("terminal too small (minimum 20x10)")

// foreground attributes for the palette; everything is drawn on black
var palette = [canvas.ColorCount]termbox.Attribute{
	termbox.ColorBlack,
	termbox.ColorRed,
	termbox.ColorGreen,
	termbox.ColorYellow,
	termbox.ColorBlue,
	termbox.ColorMagenta,
	termbox.ColorCyan,
	termbox.ColorWhite,
}

// The Screen displays a canvas in the terminal and reads key events.
type Screen struct {
	size   gott.Size
	closed bool
}

// NewScreen opens the terminal. It fails if the terminal cannot be
// initialized or is smaller than the minimum size.
func NewScreen() (*Screen, error) {
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)
	termbox.HideCursor()
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)

	s := &Screen{}
	s.size.Cols, s.size.Rows = termbox.Size()
	if s.size.Cols < gott.MinimumCols || s.size.Rows < gott.MinimumRows {
		termbox.Close()
		return nil, ErrTooSmall
	}
	return s, nil
}

// Close restores the terminal. It may be called more than once.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	termbox.Close()
}

func (s *Screen) GetSize() gott.Size {
	return s.size
}

func (s *Screen) DrawCell(col, row int, ch byte, color int, highlighted bool) {
	if ch == 0 {
		ch = canvas.Empty
	}
	fg := palette[canvas.ValidColor(color)]
	if highlighted {
		fg |= termbox.AttrReverse
	}
	termbox.SetCell(col, row, rune(ch), fg, termbox.ColorBlack)
}

// statusRow maps a status line to its terminal row; the message line is at the bottom.
func (s *Screen) statusRow(line int) int {
	if line == gott.StatusLineMessage {
		return s.size.Rows - 1
	}
	return line
}

func (s *Screen) DrawStatusLine(line int, text string) {
	row := s.statusRow(line)
	fg := termbox.ColorWhite
	if line == gott.StatusLineTools {
		fg |= termbox.AttrBold
	}
	for x := 0; x < s.size.Cols; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		termbox.SetCell(x, row, ch, fg, termbox.ColorBlack)
	}
}

func (s *Screen) Flush() {
	termbox.Flush()
}

// GetNextEvent blocks until the terminal delivers an event.
func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &gott.Event{
			Type: gott.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
		}
	case termbox.EventResize:
		// the canvas keeps its size; only the status rows move
		s.size.Cols, s.size.Rows = termbox.Size()
		termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
		return &gott.Event{Type: gott.EventResize}
	default:
		return &gott.Event{Type: gott.EventOther}
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyEnter, termbox.KeyCtrlJ:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyCtrlC:
		return gott.KeyCtrlC
	default:
		return gott.KeyUnsupported
	}
}
