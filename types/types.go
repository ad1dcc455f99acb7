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
package types

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Move directions
const (
	MoveUp = iota
	MoveDown
	MoveRight
	MoveLeft
)

// A Key is one logical key event: a literal byte, a control chord, or one of
// the named keys below.
type Key int

const (
	KeyTab       Key = '\t'
	KeyReturn    Key = '\r'
	KeyEscape    Key = 27
	KeyBackspace Key = 127
)

// Named keys use values that can't fit in a byte.
const (
	KeyArrowUp Key = iota + 1000
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Ctrl returns the control chord for a letter key.
func Ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// Printable reports whether k is a literal byte the editor should insert into
// the buffer. Bytes above 127 are parts of UTF-8 sequences and count as
// printable.
func (k Key) Printable() bool {
	if k == KeyTab {
		return true
	}
	return k >= 32 && k != KeyBackspace && k < 256
}

// Event types
const (
	EventKey = iota
	EventResize
	EventFileChanged
)

type Event struct {
	Type int
	Key  Key
	Size Size   // new window size, for EventResize
	Path string // changed file, for EventFileChanged
}

// An EventSource delivers the next input, resize, or file-change event and
// manages the file watch behind the change events.
type EventSource interface {
	GetNextEvent() *Event
	Watch(path string) error
}

// A Display draws the editor state and tracks the window geometry.
type Display interface {
	Render() error
	SetSize(size Size)
}
