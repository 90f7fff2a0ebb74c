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

import "image/color"

// Palette indices
const (
	ColorBlack = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorCount
)

const DefaultColor = ColorWhite

var colorNames = [ColorCount]string{
	"BLACK", "RED", "GREEN", "YELLOW", "BLUE", "MAGENTA", "CYAN", "WHITE",
}

// approximations of the standard ANSI colors, used when rasterizing
var colorValues = [ColorCount]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0xcd, 0x00, 0x00, 0xff},
	{0x00, 0xcd, 0x00, 0xff},
	{0xcd, 0xcd, 0x00, 0xff},
	{0x00, 0x00, 0xee, 0xff},
	{0xcd, 0x00, 0xcd, 0xff},
	{0x00, 0xcd, 0xcd, 0xff},
	{0xe5, 0xe5, 0xe5, 0xff},
}

func IsValidColor(i int) bool {
	return i >= 0 && i < ColorCount
}

// ValidColor maps out-of-range indices to the default color.
func ValidColor(i int) int {
	if !IsValidColor(i) {
		return DefaultColor
	}
	return i
}

func ColorName(i int) string {
	return colorNames[ValidColor(i)]
}

func ColorRGBA(i int) color.RGBA {
	return colorValues[ValidColor(i)]
}
