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
package codec

import (
	"bufio"
	"errors"
	"io"
)

var errNoDigits = errors.New("expected an integer")

// values beyond this are out of range for every field, so larger
// numbers saturate instead of overflowing
const saturation = 1 << 30

// A scanner reads the integers of a canvas file with the same rules as
// scanf("%d"): leading whitespace, newlines included, is skipped.
type scanner struct {
	r *bufio.Reader
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReader(r)}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (s *scanner) skipSpace() error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if !isSpace(b) {
			return s.r.UnreadByte()
		}
	}
}

func (s *scanner) scanInt() (int, error) {
	if err := s.skipSpace(); err != nil {
		return 0, err
	}
	negative := false
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == '-' || b == '+' {
		negative = b == '-'
		if b, err = s.r.ReadByte(); err != nil {
			return 0, errNoDigits
		}
	}
	if !isDigit(b) {
		s.r.UnreadByte()
		return 0, errNoDigits
	}
	var n int64
	for {
		if n < saturation {
			n = n*10 + int64(b-'0')
		}
		b, err = s.r.ReadByte()
		if err != nil {
			break
		}
		if !isDigit(b) {
			s.r.UnreadByte()
			break
		}
	}
	n = min(n, saturation)
	if negative {
		n = -n
	}
	return int(n), nil
}

// expect consumes b, which must be the very next byte.
func (s *scanner) expect(b byte) bool {
	next, err := s.r.ReadByte()
	if err != nil {
		return false
	}
	if next != b {
		s.r.UnreadByte()
		return false
	}
	return true
}

// skipLine discards everything up to and including the next newline.
func (s *scanner) skipLine() {
	for {
		b, err := s.r.ReadByte()
		if err != nil || b == '\n' {
			return
		}
	}
}
