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
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	tin "github.com/timburks/tin/types"
)

// A Terminal owns the controlling terminal: it switches it into raw mode,
// decodes its key presses, and folds window resizes and file-change
// notifications into a single event stream.
type Terminal struct {
	in   *os.File
	out  *os.File
	prev *term.State

	keys       chan tin.Key
	resize     chan os.Signal
	watcher    *fsnotify.Watcher
	watched    string
	done       chan struct{}
	readerDone chan struct{}

	started bool
	scratch [1]byte
}

// NewTerminal puts the terminal into raw mode with a 100ms read timeout and
// starts the key reader. The initial size is measured before the reader
// starts so the cursor-position fallback can read the reply itself.
func NewTerminal(in, out *os.File) (*Terminal, error) {
	t := &Terminal{
		in:         in,
		out:        out,
		keys:       make(chan tin.Key),
		resize:     make(chan os.Signal, 1),
		done:       make(chan struct{}),
		readerDone: make(chan struct{}),
	}

	prev, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	t.prev = prev

	// MakeRaw leaves reads blocking; a read timeout lets escape sequence
	// decoding distinguish a lone Escape from a sequence prefix.
	tio, err := unix.IoctlGetTermios(int(in.Fd()), unix.TCGETS)
	if err != nil {
		t.restore()
		return nil, fmt.Errorf("get termios: %w", err)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(int(in.Fd()), unix.TCSETS, tio); err != nil {
		t.restore()
		return nil, fmt.Errorf("set read timeout: %w", err)
	}

	t.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		t.restore()
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	signal.Notify(t.resize, unix.SIGWINCH)

	if _, err := t.Size(); err != nil {
		t.Close()
		return nil, err
	}

	t.started = true
	go t.readKeys()
	return t, nil
}

func (t *Terminal) restore() {
	if t.prev != nil {
		term.Restore(int(t.in.Fd()), t.prev)
		t.prev = nil
	}
}

// ReadByte reads one input byte, returning false when the read timed out.
func (t *Terminal) ReadByte() (byte, bool) {
	n, err := t.in.Read(t.scratch[:])
	if err != nil || n == 0 {
		return 0, false
	}
	return t.scratch[0], true
}

func (t *Terminal) readKeys() {
	defer close(t.readerDone)
	for {
		select {
		case <-t.done:
			return
		default:
		}
		c, ok := t.ReadByte()
		if !ok {
			continue
		}
		select {
		case t.keys <- decodeKey(t, c):
		case <-t.done:
			return
		}
	}
}

// GetNextEvent blocks until a key press, a window resize, or a change to the
// watched file arrives. A resize event with a zero size means the new
// geometry could not be measured.
func (t *Terminal) GetNextEvent() *tin.Event {
	for {
		select {
		case key := <-t.keys:
			return &tin.Event{Type: tin.EventKey, Key: key}
		case <-t.resize:
			size, err := t.Size()
			if err != nil {
				log.Error("measure window after resize", "error", err)
				return &tin.Event{Type: tin.EventResize}
			}
			return &tin.Event{Type: tin.EventResize, Size: size}
		case ev, ok := <-t.watcher.Events:
			if !ok {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				return &tin.Event{Type: tin.EventFileChanged, Path: ev.Name}
			}
		case err, ok := <-t.watcher.Errors:
			if ok {
				log.Error("file watcher", "error", err)
			}
		}
	}
}

// Size measures the window. When the ioctl is unsupported the size is probed
// with a cursor position report, but only before the key reader starts; after
// that the reply bytes would race with key decoding.
func (t *Terminal) Size() (tin.Size, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err == nil && cols > 0 && rows > 0 {
		return tin.Size{Rows: rows, Cols: cols}, nil
	}
	if t.started {
		return tin.Size{}, fmt.Errorf("measure window: %w", err)
	}
	return t.probeSize()
}

// probeSize pushes the cursor to the bottom-right corner and asks the
// terminal where it ended up.
func (t *Terminal) probeSize() (tin.Size, error) {
	if _, err := t.out.WriteString(ansi.CursorForward(999) + ansi.CursorDown(999) + requestCursorPosition); err != nil {
		return tin.Size{}, fmt.Errorf("probe window size: %w", err)
	}
	var reply []byte
	for {
		c, ok := t.ReadByte()
		if !ok {
			return tin.Size{}, fmt.Errorf("probe window size: no cursor position report")
		}
		reply = append(reply, c)
		if c == 'R' {
			break
		}
	}
	var size tin.Size
	if _, err := fmt.Sscanf(string(reply), "\x1b[%d;%dR", &size.Rows, &size.Cols); err != nil {
		return tin.Size{}, fmt.Errorf("probe window size: bad report %q", reply)
	}
	return size, nil
}

// Watch replaces the watched file. Saving renames a temporary file over the
// target, which drops any watch on the old inode, so the caller re-arms the
// watch after every save.
func (t *Terminal) Watch(path string) error {
	if t.watched != "" {
		t.watcher.Remove(t.watched)
		t.watched = ""
	}
	if err := t.watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	t.watched = path
	return nil
}

// Close stops the key reader, clears the screen, and returns the terminal to
// its previous mode.
func (t *Terminal) Close() error {
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
	signal.Stop(t.resize)
	if t.watcher != nil {
		t.watcher.Close()
	}
	t.out.WriteString(ansi.EraseDisplay(2) + ansi.CursorPosition(1, 1))
	t.restore()
	return nil
}
