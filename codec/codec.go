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

// Package codec reads and writes canvases in a plain text format:
//
//	<width> <height>
//	<color>,<ascii> <color>,<ascii> ...
//
// with one line of width pairs for each of height rows. Loading merges the
// file onto an existing canvas of any size: only the overlapping top-left
// rectangle is copied, and a file that fails to parse leaves the canvas
// untouched.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/timburks/gopaint/canvas"
)

// DefaultFileName is used when no file is named on the command line.
const DefaultFileName = "paint_save.txt"

var (
	ErrOpen          = errors.New("cannot open file")
	ErrHeader        = errors.New("malformed header")
	ErrDimensions    = errors.New("dimensions out of range")
	ErrMalformedCell = errors.New("malformed cell")
)

type Status int

const (
	StatusOK      Status = iota // completed with every value in range
	StatusCoerced               // loaded, but some values were replaced by defaults
	StatusFailed                // nothing was changed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCoerced:
		return "coerced"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes the outcome of a save or load.
type Result struct {
	Status  Status
	Err     error // set when Status is StatusFailed
	Width   int   // dimensions written or read
	Height  int
	Coerced int // number of out-of-range values replaced during a load
}

func (r Result) OK() bool {
	return r.Status != StatusFailed
}

func failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}

// Save writes c to w.
func Save(w io.Writer, c *canvas.Canvas) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", c.Width(), c.Height())
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			cell, _ := c.Get(x, y)
			if x > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d,%d", cell.Color, int(cell.Ch))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// SaveFile writes c to the named file. The canvas is never modified.
func SaveFile(path string, c *canvas.Canvas) Result {
	f, err := os.Create(path)
	if err != nil {
		return failed(fmt.Errorf("%w: %v", ErrOpen, err))
	}
	err = Save(f, c)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return failed(err)
	}
	return Result{Status: StatusOK, Width: c.Width(), Height: c.Height()}
}

// Load parses a canvas from r into scratch space and, only if the whole
// file parses, overlays it onto live.
func Load(r io.Reader, live *canvas.Canvas) Result {
	s := newScanner(r)
	width, err := s.scanInt()
	if err != nil {
		return failed(fmt.Errorf("%w: width: %v", ErrHeader, err))
	}
	height, err := s.scanInt()
	if err != nil {
		return failed(fmt.Errorf("%w: height: %v", ErrHeader, err))
	}
	scratch, err := canvas.New(width, height)
	if err != nil {
		return failed(fmt.Errorf("%w: %dx%d", ErrDimensions, width, height))
	}
	s.skipLine()

	coerced := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color, err := s.scanInt()
			if err == nil && !s.expect(',') {
				err = errors.New("missing comma")
			}
			var ascii int
			if err == nil {
				ascii, err = s.scanInt()
			}
			if err != nil {
				return failed(fmt.Errorf("%w at row %d, column %d: %v", ErrMalformedCell, y, x, err))
			}
			if !canvas.IsValidColor(color) {
				color = canvas.DefaultColor
				coerced++
			}
			if ascii < 0 || ascii > 255 {
				ascii = int(canvas.Empty)
				coerced++
			}
			scratch.Set(x, y, canvas.Cell{Ch: byte(ascii), Color: color})
		}
		s.skipLine()
	}

	live.Overlay(scratch)
	result := Result{Status: StatusOK, Width: width, Height: height, Coerced: coerced}
	if coerced > 0 {
		result.Status = StatusCoerced
	}
	return result
}

// LoadFile overlays the named file onto live.
func LoadFile(path string, live *canvas.Canvas) Result {
	f, err := os.Open(path)
	if err != nil {
		return failed(fmt.Errorf("%w: %v", ErrOpen, err))
	}
	defer f.Close()
	return Load(f, live)
}
