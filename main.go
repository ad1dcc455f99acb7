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
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/timburks/tin/commander"
	"github.com/timburks/tin/config"
	"github.com/timburks/tin/editor"
	"github.com/timburks/tin/screen"
)

func main() {
	root := &cobra.Command{
		Use:          "tin [file]",
		Short:        "tin is a terminal text editor",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(path)
		},
	}
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := openLog(cfg); err != nil {
		return err
	}

	e := editor.NewEditor(cfg.TabStop)
	if path != "" {
		if err := e.ReadFile(path); err != nil {
			if !os.IsNotExist(err) {
				return err
			}
			// a new file: bind the name, save creates it
			e.Buffer.SetFileName(path)
		}
	}

	t, err := screen.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer t.Close()

	if path != "" {
		if err := t.Watch(path); err != nil {
			log.Debug("watch", "file", path, "error", err)
		}
	}

	size, err := t.Size()
	if err != nil {
		return err
	}
	s := screen.NewScreen(os.Stdout, size, e, cfg)

	e.SetStatusMessage("^X exit   ^S save   ^F find")

	c := commander.NewCommander(e, t, s, cfg)
	for c.IsRunning() {
		if err := s.Render(); err != nil {
			// the next pass redraws the whole frame anyway
			log.Error("render", "error", err)
		}
		if err := c.ProcessEvent(t.GetNextEvent()); err != nil {
			return err
		}
	}
	return nil
}

// openLog sends logging to the state file; a terminal application can't log
// to the screen it is drawing.
func openLog(cfg *config.Config) error {
	path := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("bad log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	return nil
}
