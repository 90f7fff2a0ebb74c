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

	log "github.com/sirupsen/logrus"

	"github.com/timburks/gopaint/canvas"
	"github.com/timburks/gopaint/commander"
	"github.com/timburks/gopaint/config"
	"github.com/timburks/gopaint/painter"
	"github.com/timburks/gopaint/screen"
	gott "github.com/timburks/gopaint/types"
	"github.com/timburks/gopaint/window"
)

type session struct {
	painter   *painter.Painter
	window    *window.Window
	commander *commander.Commander
}

// newSession builds a blank canvas of the given size and the pieces that
// edit and draw it. A file named on the command line is overlaid onto the
// new canvas if it exists; the default save file never is.
func newSession(d gott.Display, size gott.Size, fileName string, named bool, cfg *config.Config) (*session, error) {
	c, err := canvas.New(size.Cols, size.Rows)
	if err != nil {
		return nil, err
	}
	// The painter manages the canvas, cursor and tools.
	p := painter.NewPainter(c)
	// The window draws the painter's canvas on the display.
	w := window.NewWindow(p, d, fileName)
	// The commander converts user inputs into painter operations.
	cmd := commander.NewCommander(p, w, fileName, cfg.ExportFile)
	if named {
		if _, err := os.Stat(fileName); err == nil {
			cmd.Load(fileName)
		}
	}
	w.SetMessage("")
	w.RenderAll()
	w.Refresh()
	return &session{painter: p, window: w, commander: cmd}, nil
}

// runScript evaluates a script against a canvas held in memory.
func runScript(script, fileName string, named bool, cfg *config.Config) (*session, error) {
	size := gott.Size{Rows: cfg.ScriptHeight, Cols: cfg.ScriptWidth}
	d := screen.NewMemory(size.Cols, size.Rows+gott.StatusLinesTop+gott.StatusLinesBottom)
	s, err := newSession(d, size, fileName, named, cfg)
	if err != nil {
		return nil, err
	}
	return s, commander.ParseEvalFile(script)
}

func runInteractive(fileName string, named bool, cfg *config.Config) error {
	// Create a screen to manage display.
	sc, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer sc.Close()
	defer func() {
		if r := recover(); r != nil {
			sc.Close()
			panic(r)
		}
	}()

	s, err := newSession(sc, window.CanvasSize(sc.GetSize()), fileName, named, cfg)
	if err != nil {
		return err
	}
	log.WithField("size", fmt.Sprintf("%dx%d", s.painter.GetCanvas().Width(), s.painter.GetCanvas().Height())).Info("started")

	// Run the main event loop.
	for s.commander.IsRunning() {
		s.commander.ProcessEvent(sc.GetNextEvent())
		s.window.Refresh()
	}
	return nil
}

// openLog sends log output to the log file, since the terminal belongs
// to the screen while painting.
func openLog(cfg *config.Config) (*os.File, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	var script, fileName string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				fmt.Fprintln(os.Stderr, "No file specified for --eval option")
				os.Exit(1)
			}
		default:
			fileName = argi
		}
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	named := fileName != ""
	if !named {
		fileName = cfg.SaveFile
	}

	if script != "" {
		// Run a paint script and exit.
		if _, err := runScript(script, fileName, named, cfg); err != nil {
			log.WithError(err).WithField("script", script).Error("script failed")
			os.Exit(1)
		}
		return
	}

	f, err := openLog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := runInteractive(fileName, named, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		f.Close()
		os.Exit(1)
	}
}
