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
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/timburks/gopaint/canvas"
	"github.com/timburks/gopaint/codec"
	"github.com/timburks/gopaint/export"
)

// Config holds settings read from the environment and an optional .env file.
type Config struct {
	SaveFile     string // save/load target
	ExportFile   string // PNG snapshot target
	LogFile      string
	LogLevel     string
	ScriptWidth  int // canvas size when running a script without a terminal
	ScriptHeight int
}

// NewDefault returns the settings used when nothing is configured.
func NewDefault() *Config {
	return &Config{
		SaveFile:     codec.DefaultFileName,
		ExportFile:   export.DefaultFileName,
		LogFile:      filepath.Join(os.Getenv("HOME"), ".paintlog"),
		LogLevel:     "info",
		ScriptWidth:  80,
		ScriptHeight: 24,
	}
}

// Load reads envFile (if it exists) into the environment, then builds a
// Config from PAINT_* variables. A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	cfg := NewDefault()
	setString(&cfg.SaveFile, "PAINT_SAVE_FILE")
	setString(&cfg.ExportFile, "PAINT_EXPORT_FILE")
	setString(&cfg.LogFile, "PAINT_LOG_FILE")
	setString(&cfg.LogLevel, "PAINT_LOG_LEVEL")
	if err := setInt(&cfg.ScriptWidth, "PAINT_SCRIPT_WIDTH", canvas.MaxWidth); err != nil {
		return nil, err
	}
	if err := setInt(&cfg.ScriptHeight, "PAINT_SCRIPT_HEIGHT", canvas.MaxHeight); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setString(s *string, name string) {
	if v := os.Getenv(name); v != "" {
		*s = v
	}
}

// setInt reads a positive integer, clamped to max.
func setInt(i *int, name string, max int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	*i = n
	return nil
}
