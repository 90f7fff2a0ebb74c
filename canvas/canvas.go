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
package canvas

import (
	"errors"
	"fmt"
)

// Canvas limits
const (
	MaxWidth  = 1000
	MaxHeight = 1000
)

// Empty is the character stored in a blank cell.
const Empty = byte(' ')

var ErrSize = errors.New("canvas size out of range")

// A Cell holds one character and its palette color.
type Cell struct {
	Ch    byte
	Color int
}

// Blank returns an empty cell in the given color.
func Blank(color int) Cell {
	return Cell{Ch: Empty, Color: ValidColor(color)}
}

// A Canvas is a row-major grid of cells.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// ValidSize reports whether a canvas of this size can be allocated.
func ValidSize(width, height int) bool {
	return width >= 1 && width <= MaxWidth && height >= 1 && height <= MaxHeight
}

// New allocates a blank canvas filled with the default color.
func New(width, height int) (*Canvas, error) {
	if !ValidSize(width, height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	c.Fill(DefaultColor)
	return c, nil
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the cell at (x, y); ok is false when the point is off the canvas.
func (c *Canvas) Get(x, y int) (cell Cell, ok bool) {
	if !c.Contains(x, y) {
		return Cell{}, false
	}
	return c.cells[y*c.width+x], true
}

// Set overwrites one cell. Points off the canvas are ignored and
// out-of-range colors are stored as the default color.
func (c *Canvas) Set(x, y int, cell Cell) {
	if !c.Contains(x, y) {
		return
	}
	cell.Color = ValidColor(cell.Color)
	c.cells[y*c.width+x] = cell
}

// Fill blanks every cell with the given color.
func (c *Canvas) Fill(color int) {
	blank := Blank(color)
	for i := range c.cells {
		c.cells[i] = blank
	}
}

// Overlay copies the top-left rectangle that src and c have in common.
// Cells of c outside that rectangle are left alone.
func (c *Canvas) Overlay(src *Canvas) {
	w := min(src.width, c.width)
	h := min(src.height, c.height)
	for y := 0; y < h; y++ {
		copy(c.cells[y*c.width:y*c.width+w], src.cells[y*src.width:y*src.width+w])
	}
}

// String returns the characters of the canvas, one line per row.
func (c *Canvas) String() string {
	b := make([]byte, 0, (c.width+1)*c.height)
	for y := 0; y < c.height; y++ {
		for _, cell := range c.cells[y*c.width : (y+1)*c.width] {
			b = append(b, cell.Ch)
		}
		b = append(b, '\n')
	}
	return string(b)
}
