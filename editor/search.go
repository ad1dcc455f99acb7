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

	tin "github.com/timburks/tin/types"
)

// searchState carries the incremental search position between prompt
// keystrokes.
type searchState struct {
	lastMatch int // row of the last match, -1 for none
	direction int // 1 forward, -1 backward
}

// ResetSearch clears the last-match memory before a new search interaction.
func (e *Editor) ResetSearch() {
	e.search = searchState{lastMatch: -1, direction: 1}
}

// FindIncremental advances the search in response to one prompt keystroke.
// Arrow keys steer the direction; Return, Escape, and query edits reset the
// last-match memory so the next scan starts fresh. Rows are scanned
// circularly starting after the last match, matching the query against each
// row's render form.
func (e *Editor) FindIncremental(query string, key tin.Key) {
	switch key {
	case tin.KeyReturn, tin.KeyEscape:
		e.search.lastMatch = -1
		e.search.direction = 1
	case tin.KeyArrowRight, tin.KeyArrowDown:
		e.search.direction = 1
	case tin.KeyArrowLeft, tin.KeyArrowUp:
		e.search.direction = -1
	default:
		e.search.lastMatch = -1
		e.search.direction = 1
	}

	if query == "" {
		return
	}
	if e.search.lastMatch == -1 {
		e.search.direction = 1
	}

	current := e.search.lastMatch
	for i := 0; i < e.Buffer.RowCount(); i++ {
		current += e.search.direction
		if current == -1 {
			current = e.Buffer.RowCount() - 1
		} else if current == e.Buffer.RowCount() {
			current = 0
		}

		row := e.Buffer.Row(current)
		idx := bytes.Index(row.Render(), []byte(query))
		if idx >= 0 {
			e.search.lastMatch = current
			e.Cursor.Row = current
			e.Cursor.Col = row.RenderToRaw(idx, e.Buffer.TabStop())
			// put the match row at the top of the window on the next scroll
			e.Offset.Rows = e.Buffer.RowCount()
			break
		}
	}
}
