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
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/x/ansi"
	"github.com/timburks/tin/config"
	"github.com/timburks/tin/editor"
	tin "github.com/timburks/tin/types"
)

const version = "0.1.0"

// The Screen draws the state of an Editor. Each refresh assembles one
// complete escape-coded frame in memory and flushes it with a single write,
// so a partially drawn screen is never visible.
type Screen struct {
	out   io.Writer
	e     *editor.Editor
	cfg   *config.Config
	size  tin.Size // full window, including the two status lines
	frame bytes.Buffer
}

func NewScreen(out io.Writer, size tin.Size, e *editor.Editor, cfg *config.Config) *Screen {
	return &Screen{out: out, size: size, e: e, cfg: cfg}
}

func (s *Screen) SetSize(size tin.Size) {
	s.size = size
}

func (s *Screen) Size() tin.Size {
	return s.size
}

// Render draws one frame. The gutter width is computed once here and used by
// both the row drawing and the cursor placement; recomputing it mid-frame
// would let the two disagree.
func (s *Screen) Render() error {
	gutter := s.e.GutterWidth()
	s.e.SetSize(tin.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols - gutter})
	s.e.Scroll()

	f := &s.frame
	f.Reset()
	f.WriteString(hideCursor)
	f.WriteString(ansi.CursorPosition(1, 1))

	s.drawStatusBar(f)
	s.drawRows(f, gutter)
	s.drawMessageBar(f)

	crow := s.e.Cursor.Row - s.e.Offset.Rows + 2 // past the top status line
	ccol := s.e.RenderCol() - s.e.Offset.Cols + gutter + 1
	f.WriteString(ansi.CursorPosition(ccol, crow))
	f.WriteString(showCursor)

	n, err := s.out.Write(f.Bytes())
	if err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	if n < f.Len() {
		return fmt.Errorf("flush frame: short write, %d of %d bytes", n, f.Len())
	}
	return nil
}

// drawStatusBar draws the reverse-video top line: dirty marker and filename
// on the left, cursor position on the right, padded to the full width.
func (s *Screen) drawStatusBar(f *bytes.Buffer) {
	f.WriteString(reverseVideo)

	name := s.e.Buffer.FileName()
	if name == "" {
		name = "[New]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	marker := " "
	if s.e.Buffer.Dirty() > 0 {
		marker = "*"
	}
	row := 0
	if s.e.Buffer.RowCount() > 0 {
		row = s.e.Cursor.Row + 1
	}
	cols := 0
	if r := s.e.Buffer.Row(s.e.Cursor.Row); r != nil {
		cols = r.RenderLength()
	}

	left := fmt.Sprintf("[%s] %s", marker, name)
	right := fmt.Sprintf("line %d/%d, col %d/%d", row, s.e.Buffer.RowCount(), s.e.RenderCol()+1, cols)

	width := s.size.Cols
	if len(right) > width {
		right = right[:width]
	}
	if len(left) > width-len(right) {
		left = left[:width-len(right)]
	}
	f.WriteString(left)
	for i := len(left) + len(right); i < width; i++ {
		f.WriteByte(' ')
	}
	f.WriteString(right)
	f.WriteString(ansi.ResetStyle)
}

// drawRows draws the visible slice of every buffer row with its line number,
// a filler marker past the end, and the welcome banner when there is nothing
// to show.
func (s *Screen) drawRows(f *bytes.Buffer, gutter int) {
	f.WriteString(lineBreak) // the first line belongs to the status bar

	textRows := s.size.Rows - 2
	textCols := s.size.Cols - gutter
	for y := 0; y < textRows; y++ {
		fileRow := y + s.e.Offset.Rows
		if fileRow >= s.e.Buffer.RowCount() {
			if s.e.Buffer.RowCount() == 0 && y >= textRows/3 {
				s.drawWelcome(f, y-textRows/3, textCols)
			} else {
				f.WriteByte('~')
			}
		} else {
			num := strconv.Itoa(fileRow + 1)
			f.WriteString(gutterColor)
			for i := len(num); i < gutter-1; i++ {
				f.WriteByte(' ')
			}
			f.WriteString(num)
			f.WriteString(ansi.ResetStyle)
			f.WriteByte(' ')

			render := s.e.Buffer.Row(fileRow).Render()
			start := s.e.Offset.Cols
			end := s.e.Offset.Cols + textCols
			if start > len(render) {
				start = len(render)
			}
			if end > len(render) {
				end = len(render)
			}
			f.Write(render[start:end])
		}
		f.WriteString(ansi.EraseLineRight)
		f.WriteString(lineBreak)
	}
}

func (s *Screen) drawWelcome(f *bytes.Buffer, line, width int) {
	var msg string
	switch line {
	case 0:
		msg = "TIN - TIN Isn't Nano"
	case 1:
		msg = "version " + version
	case 2:
		msg = "^X exit   ^S save   ^F find"
	}
	if len(msg) > width {
		msg = msg[:width]
	}
	pad := (width - len(msg)) / 2
	if pad > 0 {
		f.WriteByte('~')
		pad--
	}
	for ; pad > 0; pad-- {
		f.WriteByte(' ')
	}
	f.WriteString(msg)
}

// drawMessageBar draws the reverse-video bottom line with the transient
// status message, blank once the message has outlived its timeout.
func (s *Screen) drawMessageBar(f *bytes.Buffer) {
	f.WriteString(ansi.EraseLineRight)
	f.WriteString(reverseVideo)
	msg := s.e.StatusMessage(s.cfg.StatusTimeout())
	width := s.size.Cols
	if len(msg) > width {
		msg = msg[:width]
	}
	f.WriteString(msg)
	for i := len(msg); i < width; i++ {
		f.WriteByte(' ')
	}
	f.WriteString(ansi.ResetStyle)
}
