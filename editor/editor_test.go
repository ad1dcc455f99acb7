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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	tin "github.com/timburks/tin/types"
)

func newTestEditor(lines ...string) *Editor {
	e := NewEditor(4)
	e.SetSize(tin.Size{Rows: 10, Cols: 40})
	for i, line := range lines {
		e.Buffer.InsertRow(i, []byte(line))
	}
	e.Buffer.ClearDirty()
	return e
}

func TestInsertChar(t *testing.T) {
	e := newTestEditor()
	for _, c := range []byte("hi") {
		e.InsertChar(c)
	}
	require.Equal(t, 1, e.Buffer.RowCount())
	require.Equal(t, "hi", string(e.Buffer.Row(0).Raw()))
	require.Equal(t, tin.Point{Row: 0, Col: 2}, e.Cursor)
	require.Greater(t, e.Buffer.Dirty(), 0)
}

func TestInsertNewlineSplitsRow(t *testing.T) {
	e := newTestEditor("hello")
	e.Cursor = tin.Point{Row: 0, Col: 2}
	e.InsertNewline()
	require.Equal(t, 2, e.Buffer.RowCount())
	require.Equal(t, "he", string(e.Buffer.Row(0).Raw()))
	require.Equal(t, "llo", string(e.Buffer.Row(1).Raw()))
	require.Equal(t, tin.Point{Row: 1, Col: 0}, e.Cursor)
}

func TestInsertNewlineAtColumnZero(t *testing.T) {
	e := newTestEditor("hello")
	e.InsertNewline()
	require.Equal(t, 2, e.Buffer.RowCount())
	require.Equal(t, "", string(e.Buffer.Row(0).Raw()))
	require.Equal(t, "hello", string(e.Buffer.Row(1).Raw()))
	require.Equal(t, tin.Point{Row: 1, Col: 0}, e.Cursor)
}

func TestBackspaceJoinsRows(t *testing.T) {
	e := newTestEditor("hello", "world")
	e.Cursor = tin.Point{Row: 1, Col: 0}
	e.Backspace()
	require.Equal(t, 1, e.Buffer.RowCount())
	require.Equal(t, "helloworld", string(e.Buffer.Row(0).Raw()))
	require.Equal(t, tin.Point{Row: 0, Col: 5}, e.Cursor)
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	e := newTestEditor("a€b")
	e.Cursor = tin.Point{Row: 0, Col: 4} // just past the three-byte '€'
	e.Backspace()
	require.Equal(t, "ab", string(e.Buffer.Row(0).Raw()))
	require.Equal(t, tin.Point{Row: 0, Col: 1}, e.Cursor)
}

func TestBackspaceAtOrigin(t *testing.T) {
	e := newTestEditor("x")
	e.Backspace()
	require.Equal(t, "x", string(e.Buffer.Row(0).Raw()))
	require.Equal(t, 0, e.Buffer.Dirty())
}

func TestDeleteForward(t *testing.T) {
	e := newTestEditor("abc")
	e.Cursor = tin.Point{Row: 0, Col: 1}
	e.DeleteForward()
	require.Equal(t, "ac", string(e.Buffer.Row(0).Raw()))
	require.Equal(t, tin.Point{Row: 0, Col: 1}, e.Cursor)
}

func TestDeleteForwardJoinsAtEndOfRow(t *testing.T) {
	e := newTestEditor("ab", "cd")
	e.Cursor = tin.Point{Row: 0, Col: 2}
	e.DeleteForward()
	require.Equal(t, 1, e.Buffer.RowCount())
	require.Equal(t, "abcd", string(e.Buffer.Row(0).Raw()))
	require.Equal(t, tin.Point{Row: 0, Col: 2}, e.Cursor)
}

func TestMoveCursorSkipsRunes(t *testing.T) {
	e := newTestEditor("a€b")
	e.MoveCursor(tin.MoveRight)
	require.Equal(t, 1, e.Cursor.Col)
	e.MoveCursor(tin.MoveRight)
	require.Equal(t, 4, e.Cursor.Col) // skipped the whole '€'
	e.MoveCursor(tin.MoveLeft)
	require.Equal(t, 1, e.Cursor.Col)
}

func TestMoveCursorWrapsRows(t *testing.T) {
	e := newTestEditor("ab", "cd")
	e.Cursor = tin.Point{Row: 0, Col: 2}
	e.MoveCursor(tin.MoveRight)
	require.Equal(t, tin.Point{Row: 1, Col: 0}, e.Cursor)
	e.MoveCursor(tin.MoveLeft)
	require.Equal(t, tin.Point{Row: 0, Col: 2}, e.Cursor)
}

func TestMoveCursorClampsToShorterRow(t *testing.T) {
	e := newTestEditor("long line", "ab")
	e.Cursor = tin.Point{Row: 0, Col: 9}
	e.MoveCursor(tin.MoveDown)
	require.Equal(t, tin.Point{Row: 1, Col: 2}, e.Cursor)
}

func TestLineMotions(t *testing.T) {
	e := newTestEditor("hello")
	e.Cursor.Col = 3
	e.MoveToStartOfLine()
	require.Equal(t, 0, e.Cursor.Col)
	e.MoveToEndOfLine()
	require.Equal(t, 5, e.Cursor.Col)
}

func TestScrollFollowsCursor(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	e := newTestEditor(lines...)
	e.Cursor.Row = 25
	e.Scroll()
	require.Equal(t, 16, e.Offset.Rows) // 25 - 10 + 1
	e.Cursor.Row = 3
	e.Scroll()
	require.Equal(t, 3, e.Offset.Rows)
}

func TestScrollHorizontal(t *testing.T) {
	e := newTestEditor("0123456789012345678901234567890123456789012345")
	e.Cursor.Col = 45
	e.Scroll()
	require.Equal(t, 45, e.RenderCol())
	require.Equal(t, 6, e.Offset.Cols) // 45 - 40 + 1
	e.Cursor.Col = 2
	e.Scroll()
	require.Equal(t, 2, e.Offset.Cols)
}

func TestPageDownAndUp(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	e := newTestEditor(lines...)
	e.Scroll()
	e.PageDown()
	require.Equal(t, 19, e.Cursor.Row) // bottom of window plus one page
	e.Scroll()
	e.PageUp()
	require.Equal(t, 0, e.Cursor.Row)
}

func TestGutterWidth(t *testing.T) {
	e := newTestEditor("a")
	require.Equal(t, 2, e.GutterWidth())
	for i := 1; i < 100; i++ {
		e.Buffer.InsertRow(i, []byte("a"))
	}
	require.Equal(t, 4, e.GutterWidth())
}

func TestStatusMessageExpires(t *testing.T) {
	e := newTestEditor()
	e.SetStatusMessage("saved %d bytes", 12)
	require.Equal(t, "saved 12 bytes", e.StatusMessage(time.Minute))
	require.Equal(t, "", e.StatusMessage(0))
}

func TestSnapshotRestore(t *testing.T) {
	e := newTestEditor("one", "two")
	e.Cursor = tin.Point{Row: 1, Col: 2}
	e.Offset = tin.Size{Rows: 1, Cols: 0}
	saved := e.Snapshot()
	e.Cursor = tin.Point{}
	e.Offset = tin.Size{}
	e.Restore(saved)
	require.Equal(t, tin.Point{Row: 1, Col: 2}, e.Cursor)
	require.Equal(t, tin.Size{Rows: 1, Cols: 0}, e.Offset)
}

// The cursor must never land inside a multi-byte sequence, whatever mix of
// motions and edits got it there.
func TestCursorNeverOnContinuationByte(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := newTestEditor("aé", "€𐍈b", "", "plain")
		steps := rapid.SliceOfN(rapid.IntRange(0, 7), 1, 40).Draw(t, "steps")
		for _, op := range steps {
			switch op {
			case 0:
				e.MoveCursor(tin.MoveUp)
			case 1:
				e.MoveCursor(tin.MoveDown)
			case 2:
				e.MoveCursor(tin.MoveLeft)
			case 3:
				e.MoveCursor(tin.MoveRight)
			case 4:
				e.InsertChar('x')
			case 5:
				e.Backspace()
			case 6:
				e.InsertNewline()
			case 7:
				e.DeleteForward()
			}
			if row := e.Buffer.Row(e.Cursor.Row); row != nil && e.Cursor.Col < row.Length() {
				require.False(t, continuationByte(row.Raw()[e.Cursor.Col]),
					"cursor at %v inside a rune in %q", e.Cursor, row.Raw())
			}
			require.LessOrEqual(t, e.Cursor.Col, e.Buffer.RowLength(e.Cursor.Row))
		}
	})
}

// After a Scroll the cursor is always inside the visible window.
func TestScrollKeepsCursorVisible(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := make([]string, rapid.IntRange(1, 60).Draw(t, "rows"))
		for i := range lines {
			lines[i] = "0123456789012345678901234567890123456789012345678"[:rapid.IntRange(0, 49).Draw(t, "len")]
		}
		e := newTestEditor(lines...)
		e.Cursor.Row = rapid.IntRange(0, len(lines)).Draw(t, "crow")
		e.Cursor.Col = rapid.IntRange(0, e.Buffer.RowLength(e.Cursor.Row)).Draw(t, "ccol")
		e.Scroll()

		require.GreaterOrEqual(t, e.Cursor.Row, e.Offset.Rows)
		require.Less(t, e.Cursor.Row, e.Offset.Rows+e.Size().Rows)
		require.GreaterOrEqual(t, e.RenderCol(), e.Offset.Cols)
		require.Less(t, e.RenderCol(), e.Offset.Cols+e.Size().Cols)
	})
}
