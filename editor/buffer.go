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
	"bytes"
	"strings"
)

// A Buffer represents a file being edited: an ordered sequence of rows plus
// a counter of unsaved mutations.
type Buffer struct {
	rows     []*Row
	fileName string
	tabStop  int
	dirty    int
}

func NewBuffer(tabStop int) *Buffer {
	return &Buffer{rows: make([]*Row, 0), tabStop: tabStop}
}

func (b *Buffer) FileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) TabStop() int {
	return b.tabStop
}

// Dirty returns the number of mutations since the last successful save.
func (b *Buffer) Dirty() int {
	return b.dirty
}

func (b *Buffer) ClearDirty() {
	b.dirty = 0
}

func (b *Buffer) RowCount() int {
	return len(b.rows)
}

// Row returns the row at index i, or nil when i is out of range.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) RowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

// InsertRow inserts a new row at index at, preserving the order of all other
// rows. at may equal the row count to append.
func (b *Buffer) InsertRow(at int, raw []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = newRow(raw, b.tabStop)
	b.dirty++
}

func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	b.dirty++
}

// AppendBytes extends a row with extra raw bytes.
func (b *Buffer) AppendBytes(at int, s []byte) {
	row := b.Row(at)
	if row == nil {
		return
	}
	row.appendBytes(s, b.tabStop)
	b.dirty++
}

// InsertByte inserts one raw byte into a row. An out-of-range offset clamps
// to the row length.
func (b *Buffer) InsertByte(at, col int, c byte) {
	row := b.Row(at)
	if row == nil {
		return
	}
	row.insertByte(col, c, b.tabStop)
	b.dirty++
}

// DeleteByte removes one raw byte from a row. An out-of-range offset is a
// no-op.
func (b *Buffer) DeleteByte(at, col int) {
	row := b.Row(at)
	if row == nil || col < 0 || col >= row.Length() {
		return
	}
	row.deleteByte(col, b.tabStop)
	b.dirty++
}

// truncateRow cuts a row short at col, used when splitting a row in two.
func (b *Buffer) truncateRow(at, col int) {
	row := b.Row(at)
	if row == nil || col < 0 || col > row.Length() {
		return
	}
	row.truncate(col, b.tabStop)
	b.dirty++
}

// LoadBytes replaces the buffer content with the given file data, split into
// newline-stripped rows. The buffer starts clean.
func (b *Buffer) LoadBytes(data []byte) {
	b.rows = make([]*Row, 0)
	if len(data) > 0 {
		data = bytes.TrimSuffix(data, []byte("\n"))
		for _, line := range bytes.Split(data, []byte("\n")) {
			line = bytes.TrimSuffix(line, []byte("\r"))
			b.rows = append(b.rows, newRow(line, b.tabStop))
		}
	}
	b.dirty = 0
}

// Bytes returns the buffer content as it is saved: rows joined by newlines,
// with no trailing newline.
func (b *Buffer) Bytes() []byte {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteByte('\n')
		}
		s.Write(row.raw)
	}
	return []byte(s.String())
}
