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

// continuationByte reports whether b is a UTF-8 continuation byte, i.e. part
// of a multi-byte sequence but not its head.
func continuationByte(b byte) bool {
	return b&0xc0 == 0x80
}

// A Row holds one line of text: the raw bytes and a render form derived from
// them with tabs expanded to spaces.
type Row struct {
	raw           []byte
	render        []byte
	visibleLength int // user-perceived characters, i.e. non-continuation bytes
}

func newRow(raw []byte, tabStop int) *Row {
	r := &Row{raw: append([]byte(nil), raw...)}
	r.updateRender(tabStop)
	return r
}

func (r *Row) Raw() []byte {
	return r.raw
}

func (r *Row) Render() []byte {
	return r.render
}

func (r *Row) Length() int {
	return len(r.raw)
}

func (r *Row) RenderLength() int {
	return len(r.render)
}

func (r *Row) VisibleLength() int {
	return r.visibleLength
}

// updateRender rebuilds the render form and visible length from the raw
// bytes. It runs after every raw mutation, so a row is never read between a
// mutation and the rebuild.
func (r *Row) updateRender(tabStop int) {
	render := make([]byte, 0, len(r.raw))
	visible := 0
	for _, b := range r.raw {
		switch {
		case b == '\t':
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
			visible++
		case continuationByte(b):
			render = append(render, b)
		default:
			render = append(render, b)
			visible++
		}
	}
	r.render = render
	r.visibleLength = visible
}

// RawToRender converts a raw byte offset into a render column. Tabs advance
// to the next tab stop and continuation bytes contribute nothing.
func (r *Row) RawToRender(col, tabStop int) int {
	if col > len(r.raw) {
		col = len(r.raw)
	}
	rx := 0
	for _, b := range r.raw[:col] {
		switch {
		case b == '\t':
			rx += tabStop - rx%tabStop
		case continuationByte(b):
		default:
			rx++
		}
	}
	return rx
}

// RenderToRaw is the inverse walk: it returns the raw offset of the byte that
// crosses the given render column, or the row length if the column is past
// the end of the row.
func (r *Row) RenderToRaw(renderCol, tabStop int) int {
	rx := 0
	for cx, b := range r.raw {
		switch {
		case b == '\t':
			rx += tabStop - rx%tabStop
		case continuationByte(b):
			continue
		default:
			rx++
		}
		if rx > renderCol {
			return cx
		}
	}
	return len(r.raw)
}

func (r *Row) insertByte(at int, b byte, tabStop int) {
	if at < 0 || at > len(r.raw) {
		at = len(r.raw)
	}
	r.raw = append(r.raw, 0)
	copy(r.raw[at+1:], r.raw[at:])
	r.raw[at] = b
	r.updateRender(tabStop)
}

func (r *Row) deleteByte(at, tabStop int) {
	r.raw = append(r.raw[:at], r.raw[at+1:]...)
	r.updateRender(tabStop)
}

func (r *Row) appendBytes(s []byte, tabStop int) {
	r.raw = append(r.raw, s...)
	r.updateRender(tabStop)
}

func (r *Row) truncate(at, tabStop int) {
	r.raw = r.raw[:at]
	r.updateRender(tabStop)
}
