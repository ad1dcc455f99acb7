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
	tin "github.com/timburks/tin/types"
)

// A byteSource yields raw input bytes. The second result is false when no
// byte arrived within the read timeout.
type byteSource interface {
	ReadByte() (byte, bool)
}

// decodeKey turns the leading byte of a key press, plus any escape sequence
// continuation bytes, into one Key. An escape followed by nothing, or by a
// sequence we don't recognize, decodes as a bare Escape.
func decodeKey(src byteSource, c byte) tin.Key {
	if c != 27 {
		return tin.Key(c)
	}
	b0, ok := src.ReadByte()
	if !ok {
		return tin.KeyEscape
	}
	switch b0 {
	case '[':
		b1, ok := src.ReadByte()
		if !ok {
			return tin.KeyEscape
		}
		if b1 >= '0' && b1 <= '9' {
			b2, ok := src.ReadByte()
			if !ok || b2 != '~' {
				return tin.KeyEscape
			}
			switch b1 {
			case '1', '7':
				return tin.KeyHome
			case '3':
				return tin.KeyDelete
			case '4', '8':
				return tin.KeyEnd
			case '5':
				return tin.KeyPageUp
			case '6':
				return tin.KeyPageDown
			}
			return tin.KeyEscape
		}
		switch b1 {
		case 'A':
			return tin.KeyArrowUp
		case 'B':
			return tin.KeyArrowDown
		case 'C':
			return tin.KeyArrowRight
		case 'D':
			return tin.KeyArrowLeft
		case 'H':
			return tin.KeyHome
		case 'F':
			return tin.KeyEnd
		}
		return tin.KeyEscape
	case 'O':
		b1, ok := src.ReadByte()
		if !ok {
			return tin.KeyEscape
		}
		switch b1 {
		case 'H':
			return tin.KeyHome
		case 'F':
			return tin.KeyEnd
		}
		return tin.KeyEscape
	}
	return tin.KeyEscape
}
