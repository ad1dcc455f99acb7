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
package editor

import (
	"fmt"
	"time"

	tin "github.com/timburks/tin/types"
)

// The Editor manages the editing of text in a Buffer. The cursor column is a
// raw byte offset; the render column is recomputed from it on every scroll.
type Editor struct {
	Cursor tin.Point // cursor position: row index and raw byte column
	Offset tin.Size  // scroll offsets: Rows is the first visible row, Cols the first visible render column
	Buffer *Buffer

	size      tin.Size // text area: window minus status lines and gutter
	renderCol int

	statusMessage string
	statusTime    time.Time

	search searchState
}

func NewEditor(tabStop int) *Editor {
	return &Editor{Buffer: NewBuffer(tabStop)}
}

// SetSize sets the size of the editing area for scroll computations.
func (e *Editor) SetSize(s tin.Size) {
	e.size = s
}

func (e *Editor) Size() tin.Size {
	return e.size
}

// RenderCol returns the cursor's render column as of the last Scroll.
func (e *Editor) RenderCol() int {
	return e.renderCol
}

// GutterWidth returns the width of the line-number gutter including its
// trailing space, derived from the current row count.
func (e *Editor) GutterWidth() int {
	digits := 1
	for n := e.Buffer.RowCount(); n >= 10; n /= 10 {
		digits++
	}
	return digits + 1
}

func (e *Editor) currentRow() *Row {
	return e.Buffer.Row(e.Cursor.Row)
}

// Scroll recomputes the render column and pulls the scroll offsets so the
// cursor stays inside the visible window.
func (e *Editor) Scroll() {
	e.renderCol = 0
	if row := e.currentRow(); row != nil {
		e.renderCol = row.RawToRender(e.Cursor.Col, e.Buffer.TabStop())
	}

	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row >= e.Offset.Rows+e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	if e.renderCol < e.Offset.Cols {
		e.Offset.Cols = e.renderCol
	}
	if e.renderCol >= e.Offset.Cols+e.size.Cols {
		e.Offset.Cols = e.renderCol - e.size.Cols + 1
	}
}

// MoveCursor moves one step in the given direction. Horizontal moves skip
// whole UTF-8 sequences; Left at column zero wraps to the end of the previous
// row and Right at the end of a row wraps to the start of the next.
func (e *Editor) MoveCursor(direction int) {
	row := e.currentRow()
	switch direction {
	case tin.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case tin.MoveDown:
		if e.Cursor.Row < e.Buffer.RowCount() {
			e.Cursor.Row++
		}
	case tin.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
			for e.Cursor.Col > 0 && continuationByte(row.raw[e.Cursor.Col]) {
				e.Cursor.Col--
			}
		} else if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.RowLength(e.Cursor.Row)
		}
	case tin.MoveRight:
		if row != nil && e.Cursor.Col < row.Length() {
			e.Cursor.Col++
			for e.Cursor.Col < row.Length() && continuationByte(row.raw[e.Cursor.Col]) {
				e.Cursor.Col++
			}
		} else if row != nil && e.Cursor.Col == row.Length() {
			e.Cursor.Row++
			e.Cursor.Col = 0
		}
	}
	e.clampCursor()
}

// clampCursor keeps the column inside the row it landed on and off of UTF-8
// continuation bytes.
func (e *Editor) clampCursor() {
	if l := e.Buffer.RowLength(e.Cursor.Row); e.Cursor.Col > l {
		e.Cursor.Col = l
	}
	if row := e.currentRow(); row != nil {
		for e.Cursor.Col > 0 && e.Cursor.Col < row.Length() && continuationByte(row.raw[e.Cursor.Col]) {
			e.Cursor.Col--
		}
	}
}

// InsertChar inserts one raw byte at the cursor, appending a new row when the
// cursor sits on the virtual row past the last line.
func (e *Editor) InsertChar(c byte) {
	if e.Cursor.Row == e.Buffer.RowCount() {
		e.Buffer.InsertRow(e.Buffer.RowCount(), nil)
	}
	e.Buffer.InsertByte(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

// InsertNewline splits the current row at the cursor.
func (e *Editor) InsertNewline() {
	if e.Cursor.Col == 0 {
		e.Buffer.InsertRow(e.Cursor.Row, nil)
	} else {
		row := e.currentRow()
		rest := append([]byte(nil), row.raw[e.Cursor.Col:]...)
		e.Buffer.InsertRow(e.Cursor.Row+1, rest)
		e.Buffer.truncateRow(e.Cursor.Row, e.Cursor.Col)
	}
	e.Cursor.Row++
	e.Cursor.Col = 0
}

// Backspace deletes the character before the cursor. A multi-byte UTF-8
// sequence is removed as one user action. At column zero the current row is
// joined onto the previous one and the cursor lands at the join point.
func (e *Editor) Backspace() {
	if e.Cursor.Col == 0 && e.Cursor.Row == 0 {
		return
	}
	if e.Cursor.Row == e.Buffer.RowCount() {
		return
	}

	row := e.currentRow()
	if e.Cursor.Col > 0 {
		for e.Cursor.Col > 0 && continuationByte(row.raw[e.Cursor.Col-1]) {
			e.Buffer.DeleteByte(e.Cursor.Row, e.Cursor.Col-1)
			e.Cursor.Col--
		}
		if e.Cursor.Col > 0 {
			e.Buffer.DeleteByte(e.Cursor.Row, e.Cursor.Col-1)
			e.Cursor.Col--
		}
	} else {
		e.Cursor.Col = e.Buffer.RowLength(e.Cursor.Row - 1)
		e.Buffer.AppendBytes(e.Cursor.Row-1, row.raw)
		e.Buffer.DeleteRow(e.Cursor.Row)
		e.Cursor.Row--
	}
}

// DeleteForward deletes the character under the cursor.
func (e *Editor) DeleteForward() {
	e.MoveCursor(tin.MoveRight)
	e.Backspace()
}

func (e *Editor) MoveToStartOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.RowLength(e.Cursor.Row)
}

func (e *Editor) PageUp() {
	e.Cursor.Row = e.Offset.Rows
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(tin.MoveUp)
	}
}

func (e *Editor) PageDown() {
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	if e.Cursor.Row > e.Buffer.RowCount() {
		e.Cursor.Row = e.Buffer.RowCount()
	}
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(tin.MoveDown)
	}
	e.clampCursor()
}

// SetStatusMessage sets the transient message shown on the bottom line.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}

// StatusMessage returns the current message, or an empty string once it is
// older than the timeout.
func (e *Editor) StatusMessage(timeout time.Duration) string {
	if time.Since(e.statusTime) >= timeout {
		return ""
	}
	return e.statusMessage
}

// A Snapshot captures cursor and scroll state so an interaction can be
// cancelled without a trace.
type Snapshot struct {
	Cursor tin.Point
	Offset tin.Size
}

func (e *Editor) Snapshot() Snapshot {
	return Snapshot{Cursor: e.Cursor, Offset: e.Offset}
}

func (e *Editor) Restore(s Snapshot) {
	e.Cursor = s.Cursor
	e.Offset = s.Offset
}
