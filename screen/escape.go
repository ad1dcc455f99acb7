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

import "github.com/charmbracelet/x/ansi"

// DEC private mode toggles and the cursor position report request, which the
// styling helpers don't cover.
const (
	hideCursor            = "\x1b[?25l"
	showCursor            = "\x1b[?25h"
	requestCursorPosition = "\x1b[6n"
	lineBreak             = "\r\n"
)

var (
	reverseVideo = ansi.Style{}.Reverse().String()
	gutterColor  = ansi.Style{}.ForegroundColor(ansi.Red).String()
)
