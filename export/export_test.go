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
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/gopaint/canvas"
)

func TestEncodeSize(t *testing.T) {
	c, err := canvas.New(6, 3)
	require.NoError(t, err)
	c.Set(1, 1, canvas.Cell{Ch: '#', Color: canvas.ColorRed})

	var b bytes.Buffer
	require.NoError(t, Encode(&b, c))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, 6*CellWidth, img.Bounds().Dx())
	assert.Equal(t, 3*CellHeight, img.Bounds().Dy())
}

func TestBlankCanvasIsBlack(t *testing.T) {
	c, err := canvas.New(2, 2)
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, Encode(&b, c))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	r, g, bl, _ := img.At(CellWidth/2, CellHeight/2).RGBA()
	assert.Zero(t, r+g+bl)
}

func TestPaintedCellHasInk(t *testing.T) {
	c, err := canvas.New(1, 1)
	require.NoError(t, err)
	c.Set(0, 0, canvas.Cell{Ch: '#', Color: canvas.ColorWhite})
	var b bytes.Buffer
	require.NoError(t, Encode(&b, c))
	img, err := png.Decode(&b)
	require.NoError(t, err)
	lit := 0
	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
}

func TestPNGWritesFile(t *testing.T) {
	c, err := canvas.New(4, 4)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, PNG(path, c))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
