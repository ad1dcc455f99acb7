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
	"testing"

	"github.com/stretchr/testify/require"

	tin "github.com/timburks/tin/types"
)

// fakeBytes replays a fixed byte sequence, then times out.
type fakeBytes struct {
	data []byte
	pos  int
}

func (f *fakeBytes) ReadByte() (byte, bool) {
	if f.pos >= len(f.data) {
		return 0, false
	}
	b := f.data[f.pos]
	f.pos++
	return b, true
}

func TestDecodeKey(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
		want  tin.Key
	}{
		{"letter", "a", tin.Key('a')},
		{"control", "\x13", tin.Ctrl('s')},
		{"return", "\r", tin.KeyReturn},
		{"tab", "\t", tin.KeyTab},
		{"backspace", "\x7f", tin.KeyBackspace},
		{"utf8 lead byte", "\xc3", tin.Key(0xc3)},
		{"arrow up", "\x1b[A", tin.KeyArrowUp},
		{"arrow down", "\x1b[B", tin.KeyArrowDown},
		{"arrow right", "\x1b[C", tin.KeyArrowRight},
		{"arrow left", "\x1b[D", tin.KeyArrowLeft},
		{"home csi", "\x1b[H", tin.KeyHome},
		{"end csi", "\x1b[F", tin.KeyEnd},
		{"home vt 1", "\x1b[1~", tin.KeyHome},
		{"home vt 7", "\x1b[7~", tin.KeyHome},
		{"end vt 4", "\x1b[4~", tin.KeyEnd},
		{"end vt 8", "\x1b[8~", tin.KeyEnd},
		{"delete", "\x1b[3~", tin.KeyDelete},
		{"page up", "\x1b[5~", tin.KeyPageUp},
		{"page down", "\x1b[6~", tin.KeyPageDown},
		{"home ss3", "\x1bOH", tin.KeyHome},
		{"end ss3", "\x1bOF", tin.KeyEnd},
		{"bare escape", "\x1b", tin.KeyEscape},
		{"truncated csi", "\x1b[", tin.KeyEscape},
		{"truncated vt", "\x1b[5", tin.KeyEscape},
		{"unknown csi", "\x1b[Z", tin.KeyEscape},
		{"unknown ss3", "\x1bOQ", tin.KeyEscape},
		{"unknown follower", "\x1bx", tin.KeyEscape},
	} {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeBytes{data: []byte(tt.input)}
			c, ok := src.ReadByte()
			require.True(t, ok)
			require.Equal(t, tt.want, decodeKey(src, c))
		})
	}
}
