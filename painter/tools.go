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
)

const BrushCount = 10

// DefaultBrushes are ordered roughly by visual density.
var DefaultBrushes = [BrushCount]byte{'#', '*', '@', '%', '+', 'o', 'x', '.', '~', '&'}

// ToolState holds the pen, brush and color selection. It is a value type:
// the transformations below return a new ToolState and never share the
// brush table with the receiver.
type ToolState struct {
	PenDown    bool
	BrushIndex int
	Color      int
	Brushes    [BrushCount]byte
}

func DefaultTools() ToolState {
	return ToolState{
		BrushIndex: 0,
		Color:      canvas.DefaultColor,
		Brushes:    DefaultBrushes,
	}
}

// Brush returns the character that the next paint will place.
func (t ToolState) Brush() byte {
	return t.Brushes[t.BrushIndex]
}

// Erasing is true while slot 0 is overridden by the eraser and selected.
func (t ToolState) Erasing() bool {
	return t.BrushIndex == 0 && t.Brushes[0] == canvas.Empty
}

func (t ToolState) WithPenToggled() ToolState {
	t.PenDown = !t.PenDown
	return t
}

// WithNextBrush restores the default brushes and selects the next one.
func (t ToolState) WithNextBrush() ToolState {
	t.Brushes = DefaultBrushes
	t.BrushIndex = (t.BrushIndex + 1) % BrushCount
	return t
}

// WithEraser restores the default brushes, selects slot 0 and blanks it.
func (t ToolState) WithEraser() ToolState {
	t.Brushes = DefaultBrushes
	t.BrushIndex = 0
	t.Brushes[0] = canvas.Empty
	return t
}

func (t ToolState) WithNextColor() ToolState {
	t.Color = (t.Color + 1) % canvas.ColorCount
	return t
}

// WithColor selects a palette index directly; ok is false (and t is
// returned unchanged) when the index is not in the palette.
func (t ToolState) WithColor(i int) (next ToolState, ok bool) {
	if !canvas.IsValidColor(i) {
		return t, false
	}
	t.Color = i
	return t, true
}
