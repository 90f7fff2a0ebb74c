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
	gott "github.com/timburks/gopaint/types"
)

// A MemoryCell is what a Memory display holds at one position.
type MemoryCell struct {
	Ch          byte
	Color       int
	Highlighted bool
}

// Memory is a Display that keeps everything drawn in memory.
// It is used for scripts run without a terminal and in tests.
type Memory struct {
	size    gott.Size
	cells   []MemoryCell
	status  [gott.StatusLineCount]string
	Draws   int // cell draws since creation
	Flushes int
}

func NewMemory(cols, rows int) *Memory {
	m := &Memory{
		size:  gott.Size{Rows: rows, Cols: cols},
		cells: make([]MemoryCell, cols*rows),
	}
	for i := range m.cells {
		m.cells[i].Ch = ' '
	}
	return m
}

func (m *Memory) GetSize() gott.Size {
	return m.size
}

func (m *Memory) DrawCell(col, row int, ch byte, color int, highlighted bool) {
	if col < 0 || col >= m.size.Cols || row < 0 || row >= m.size.Rows {
		return
	}
	m.cells[row*m.size.Cols+col] = MemoryCell{Ch: ch, Color: color, Highlighted: highlighted}
	m.Draws++
}

func (m *Memory) DrawStatusLine(line int, text string) {
	if line < 0 || line >= len(m.status) {
		return
	}
	if len(text) > m.size.Cols {
		text = text[:m.size.Cols]
	}
	m.status[line] = text
}

func (m *Memory) Flush() {
	m.Flushes++
}

// CellAt returns what was last drawn at a display position.
func (m *Memory) CellAt(col, row int) MemoryCell {
	if col < 0 || col >= m.size.Cols || row < 0 || row >= m.size.Rows {
		return MemoryCell{}
	}
	return m.cells[row*m.size.Cols+col]
}

func (m *Memory) StatusLine(line int) string {
	return m.status[line]
}
