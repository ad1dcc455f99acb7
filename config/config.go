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
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable editor settings.
type Config struct {
	TabStop           int    `toml:"tab_stop"`            // render width of a tab stop
	StatusTimeoutSecs int    `toml:"status_timeout_secs"` // seconds a status message stays visible
	QuitPresses       int    `toml:"quit_presses"`        // extra quit presses required with unsaved changes
	LogLevel          string `toml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		TabStop:           4,
		StatusTimeoutSecs: 2,
		QuitPresses:       3,
		LogLevel:          "info",
	}
}

// StatusTimeout returns the status message timeout as a duration.
func (c *Config) StatusTimeout() time.Duration {
	return time.Duration(c.StatusTimeoutSecs) * time.Second
}

// Path returns the location of the configuration file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "tin", "config.toml")
}

// LogPath returns the location of the log file.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "tin", "tin.log")
}

// Load reads the configuration file, falling back to defaults when it does
// not exist.
func Load() (*Config, error) {
	return LoadFile(Path())
}

func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TabStop < 1 {
		return fmt.Errorf("tab_stop must be at least 1, got %d", c.TabStop)
	}
	if c.StatusTimeoutSecs < 1 {
		return fmt.Errorf("status_timeout_secs must be at least 1, got %d", c.StatusTimeoutSecs)
	}
	if c.QuitPresses < 0 {
		return fmt.Errorf("quit_presses must not be negative, got %d", c.QuitPresses)
	}
	return nil
}
