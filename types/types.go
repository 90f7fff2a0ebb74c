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
package types

// Screen layout
const (
	StatusLinesTop    = 2 // status rows above the canvas
	StatusLinesBottom = 1 // tips/message row below the canvas
	MinimumCols       = 20
	MinimumRows       = 10
)

// Status lines, in the order they are drawn
const (
	StatusLineTools   = 0
	StatusLineHelp    = 1
	StatusLineMessage = 2
	StatusLineCount   = 3
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventOther  = 2
)

type Key int

// Keys the commander understands. Printable characters arrive in Event.Ch.
const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeyEsc
	KeySpace
	KeyCtrlC
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// A Display is the drawing surface provided by the terminal driver.
type Display interface {
	GetSize() Size
	DrawCell(col, row int, ch byte, color int, highlighted bool)
	DrawStatusLine(line int, text string)
	Flush()
}

// An EventSource blocks until the next input event is available.
type EventSource interface {
	GetNextEvent() *Event
}

// A Renderer repaints canvas cells after they change.
type Renderer interface {
	RenderCell(x, y int)
	RenderAll()
}
