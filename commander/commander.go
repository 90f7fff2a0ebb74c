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

	log "github.com/sirupsen/logrus"

	"github.com/timburks/gopaint/codec"
	"github.com/timburks/gopaint/export"
	"github.com/timburks/gopaint/painter"
	gott "github.com/timburks/gopaint/types"
	"github.com/timburks/gopaint/window"
)

// The Commander converts user input into operations on the painter and
// the canvas file.
type Commander struct {
	painter    *painter.Painter
	window     *window.Window
	running    bool
	fileName   string // save/load target
	exportName string // PNG snapshot target
}

func NewCommander(p *painter.Painter, w *window.Window, fileName, exportName string) *Commander {
	c := &Commander{
		painter:    p,
		window:     w,
		running:    true,
		fileName:   fileName,
		exportName: exportName,
	}
	bindLisp(c)
	return c
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) Quit() {
	c.running = false
}

func (c *Commander) GetFileName() string {
	return c.fileName
}

// ProcessEvent un-highlights the cursor and performs the action bound to
// the event. Unbound events are ignored. A resize keeps the canvas size
// but redraws it, since the terminal was cleared. The caller refreshes
// the window afterwards.
func (c *Commander) ProcessEvent(event *gott.Event) {
	c.window.RenderCursor(false)
	c.window.SetMessage("")
	switch event.Type {
	case gott.EventKey:
		c.processKey(event)
	case gott.EventResize:
		c.window.RenderAll()
	}
}

func (c *Commander) processKey(event *gott.Event) {
	p := c.painter
	switch event.Key {
	case gott.KeyArrowUp:
		p.Move(gott.MoveUp)
		return
	case gott.KeyArrowDown:
		p.Move(gott.MoveDown)
		return
	case gott.KeyArrowLeft:
		p.Move(gott.MoveLeft)
		return
	case gott.KeyArrowRight:
		p.Move(gott.MoveRight)
		return
	case gott.KeySpace:
		p.PaintAtCursor()
		return
	case gott.KeyEnter:
		p.TogglePen()
		return
	case gott.KeyEsc, gott.KeyCtrlC:
		c.Quit()
		return
	}
	switch ch := event.Ch; ch {
	case ' ':
		p.PaintAtCursor()
	case '\n', '\r':
		p.TogglePen()
	//
	// tools
	//
	case 'b', 'B':
		p.CycleBrush()
	case 'e', 'E':
		p.EnterEraser()
	case 'c':
		p.CycleColor()
	case 'x', 'X':
		p.ClearCanvas()
	case '0', '1', '2', '3', '4', '5', '6', '7':
		p.SetColor(int(ch - '0'))
	//
	// files
	//
	case 's', 'S':
		c.Save(c.fileName)
	case 'l', 'L':
		c.Load(c.fileName)
	case 'p', 'P':
		c.Export(c.exportName)
	case 'q', 'Q':
		c.Quit()
	}
}

// Save writes the canvas to path. Failures are logged and otherwise ignored.
func (c *Commander) Save(path string) codec.Result {
	result := codec.SaveFile(path, c.painter.GetCanvas())
	if !result.OK() {
		log.WithError(result.Err).WithFields(log.Fields{"file": path, "op": "save"}).Warn("save failed")
		return result
	}
	log.WithFields(log.Fields{"file": path, "op": "save"}).Info("saved")
	c.window.SetMessage(fmt.Sprintf("Saved %s", path))
	return result
}

// Load overlays path onto the canvas and repaints it. On failure the
// canvas is unchanged.
func (c *Commander) Load(path string) codec.Result {
	result := codec.LoadFile(path, c.painter.GetCanvas())
	fields := log.Fields{"file": path, "op": "load"}
	if !result.OK() {
		log.WithError(result.Err).WithFields(fields).Warn("load failed")
		return result
	}
	if result.Status == codec.StatusCoerced {
		log.WithFields(fields).WithField("coerced", result.Coerced).Debug("out-of-range values replaced")
	}
	log.WithFields(fields).WithField("size", fmt.Sprintf("%dx%d", result.Width, result.Height)).Info("loaded")
	c.painter.Refreshed()
	c.window.SetMessage(fmt.Sprintf("Loaded %s", path))
	return result
}

// Export writes a PNG picture of the canvas to path.
func (c *Commander) Export(path string) error {
	err := export.PNG(path, c.painter.GetCanvas())
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"file": path, "op": "export"}).Warn("export failed")
		return err
	}
	c.window.SetMessage(fmt.Sprintf("Exported %s", path))
	return nil
}
