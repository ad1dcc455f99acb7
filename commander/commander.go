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
package commander

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/timburks/tin/config"
	"github.com/timburks/tin/editor"
	tin "github.com/timburks/tin/types"
)

// The Commander converts events into commands for the Editor.
type Commander struct {
	editor   *editor.Editor
	terminal tin.EventSource
	display  tin.Display
	cfg      *config.Config

	running   bool
	quitsLeft int
	lastSave  time.Time
}

func NewCommander(e *editor.Editor, terminal tin.EventSource, display tin.Display, cfg *config.Config) *Commander {
	return &Commander{
		editor:    e,
		terminal:  terminal,
		display:   display,
		cfg:       cfg,
		running:   true,
		quitsLeft: cfg.QuitPresses,
	}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

// ProcessEvent handles one event from the terminal. The returned error is
// fatal; recoverable problems become status messages instead.
func (c *Commander) ProcessEvent(ev *tin.Event) error {
	switch ev.Type {
	case tin.EventKey:
		c.processKey(ev.Key)
	case tin.EventResize:
		if ev.Size.Rows == 0 {
			return fmt.Errorf("window size unavailable after resize")
		}
		c.display.SetSize(ev.Size)
	case tin.EventFileChanged:
		// a save of our own also fires the watcher
		if time.Since(c.lastSave) > time.Second {
			c.editor.SetStatusMessage("%s changed on disk", ev.Path)
		}
	}
	return nil
}

func (c *Commander) processKey(key tin.Key) {
	if key != tin.Ctrl('x') {
		c.quitsLeft = c.cfg.QuitPresses
	}
	switch key {
	case tin.Ctrl('x'):
		c.quit()
	case tin.Ctrl('s'):
		c.save()
	case tin.Ctrl('f'):
		c.find()
	case tin.KeyReturn:
		c.editor.InsertNewline()
	case tin.KeyArrowUp:
		c.editor.MoveCursor(tin.MoveUp)
	case tin.KeyArrowDown:
		c.editor.MoveCursor(tin.MoveDown)
	case tin.KeyArrowLeft:
		c.editor.MoveCursor(tin.MoveLeft)
	case tin.KeyArrowRight:
		c.editor.MoveCursor(tin.MoveRight)
	case tin.KeyHome:
		c.editor.MoveToStartOfLine()
	case tin.KeyEnd:
		c.editor.MoveToEndOfLine()
	case tin.KeyPageUp:
		c.editor.PageUp()
	case tin.KeyPageDown:
		c.editor.PageDown()
	case tin.KeyDelete:
		c.editor.DeleteForward()
	case tin.KeyBackspace, tin.Ctrl('h'):
		c.editor.Backspace()
	case tin.KeyEscape, tin.Ctrl('l'):
		// refresh happens on every loop pass anyway
	default:
		if key.Printable() {
			c.editor.InsertChar(byte(key))
		}
	}
}

// quit stops the main loop, but with unsaved changes it demands repeated
// presses first.
func (c *Commander) quit() {
	if c.editor.Buffer.Dirty() > 0 && c.quitsLeft > 0 {
		noun := "times"
		if c.quitsLeft == 1 {
			noun = "time"
		}
		c.editor.SetStatusMessage("Unsaved changes in buffer! (press ^X %d more %s to quit)", c.quitsLeft, noun)
		c.quitsLeft--
		return
	}
	c.running = false
}

// save writes the buffer to its file, prompting for a name when the buffer
// has none.
func (c *Commander) save() {
	name := c.editor.Buffer.FileName()
	if name == "" {
		input, ok := c.prompt("save as: %s", nil)
		if !ok || input == "" {
			c.editor.SetStatusMessage("write aborted")
			return
		}
		name = input
		c.editor.Buffer.SetFileName(name)
	}
	c.lastSave = time.Now()
	size := len(c.editor.Buffer.Bytes())
	if err := c.editor.WriteFile(name); err != nil {
		log.Error("save", "file", name, "error", err)
		c.editor.SetStatusMessage("save error: %v", err)
		return
	}
	c.editor.SetStatusMessage("wrote %d bytes to %s", size, name)
	// the rename dropped any watch on the old inode
	if err := c.terminal.Watch(name); err != nil {
		log.Error("watch after save", "file", name, "error", err)
	}
}

// find runs an incremental search prompt, restoring the view when the search
// is cancelled.
func (c *Commander) find() {
	saved := c.editor.Snapshot()
	c.editor.ResetSearch()
	query, ok := c.prompt("find (next/prev with arrow keys): %s", c.editor.FindIncremental)
	if !ok || query == "" {
		c.editor.Restore(saved)
	}
}

// prompt collects a line of input on the message bar, invoking the callback
// after every keystroke. It returns false when the user cancelled with
// Escape.
func (c *Commander) prompt(format string, callback func(string, tin.Key)) (string, bool) {
	var input []byte
	for {
		c.editor.SetStatusMessage(format, input)
		if err := c.display.Render(); err != nil {
			log.Error("render prompt", "error", err)
		}
		ev := c.terminal.GetNextEvent()
		if ev.Type == tin.EventResize {
			if ev.Size.Rows > 0 {
				c.display.SetSize(ev.Size)
			}
			continue
		}
		if ev.Type != tin.EventKey {
			continue
		}
		key := ev.Key
		switch {
		case key == tin.KeyDelete || key == tin.KeyBackspace || key == tin.Ctrl('h'):
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case key == tin.KeyEscape:
			c.editor.SetStatusMessage("")
			if callback != nil {
				callback(string(input), key)
			}
			return "", false
		case key == tin.KeyReturn:
			c.editor.SetStatusMessage("")
			if callback != nil {
				callback(string(input), key)
			}
			return string(input), true
		case key >= 32 && key < 127:
			input = append(input, byte(key))
		}
		if callback != nil {
			callback(string(input), key)
		}
	}
}
