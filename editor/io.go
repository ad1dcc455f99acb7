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
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// ReadFile loads a file into the buffer and binds the buffer to its name.
func (e *Editor) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.Buffer.LoadBytes(data)
	e.Buffer.SetFileName(path)
	return nil
}

// WriteFile saves the buffer atomically: the content goes to a temporary
// file in the target's directory which is then renamed over the target. A
// pre-existing target keeps its mode, owner, and group; a symbolic link is
// followed so the write replaces the link's destination, not the link. The
// dirty counter resets only when every step succeeded.
func (e *Editor) WriteFile(path string) error {
	target := path
	var mode os.FileMode = 0644
	uid, gid := -1, -1
	preexisting := false

	info, err := os.Lstat(path)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			target, err = filepath.EvalSymlinks(path)
			if err != nil {
				return fmt.Errorf("resolve symlink: %w", err)
			}
			info, err = os.Stat(target)
			if err != nil {
				return fmt.Errorf("stat %s: %w", target, err)
			}
		}
		preexisting = true
		mode = info.Mode().Perm()
		if st, ok := info.Sys().(*syscall.Stat_t); ok {
			uid, gid = int(st.Uid), int(st.Gid)
		}
	case os.IsNotExist(err):
		// fresh file, default permissions
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	if _, err := f.Write(e.Buffer.Bytes()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write: %w", err)
	}

	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}

	if preexisting {
		if err := os.Chmod(target, mode); err != nil {
			return fmt.Errorf("restore mode: %w", err)
		}
		if uid >= 0 {
			if err := os.Chown(target, uid, gid); err != nil {
				return fmt.Errorf("restore owner: %w", err)
			}
		}
	}

	e.Buffer.ClearDirty()
	return nil
}
