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
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/steelseries/golisp"
)

// golisp primitives live in a single global environment, so they act on
// the most recently created commander.
var active *Commander

func bindLisp(c *Commander) {
	active = c
}

func init() {
	golisp.MakePrimitiveFunction("up", "0", moveImpl(0, -1))
	golisp.MakePrimitiveFunction("down", "0", moveImpl(0, 1))
	golisp.MakePrimitiveFunction("left", "0", moveImpl(-1, 0))
	golisp.MakePrimitiveFunction("right", "0", moveImpl(1, 0))
	golisp.MakePrimitiveFunction("move", "2", MoveImpl)
	golisp.MakePrimitiveFunction("paint", "0", PaintImpl)
	golisp.MakePrimitiveFunction("pen", "0", PenImpl)
	golisp.MakePrimitiveFunction("pen-down?", "0", PenDownImpl)
	golisp.MakePrimitiveFunction("brush", "0", BrushImpl)
	golisp.MakePrimitiveFunction("eraser", "0", EraserImpl)
	golisp.MakePrimitiveFunction("color", "0", ColorImpl)
	golisp.MakePrimitiveFunction("set-color", "1", SetColorImpl)
	golisp.MakePrimitiveFunction("clear-canvas", "0", ClearImpl)
	golisp.MakePrimitiveFunction("cursor-x", "0", CursorXImpl)
	golisp.MakePrimitiveFunction("cursor-y", "0", CursorYImpl)
	golisp.MakePrimitiveFunction("cell-char", "2", CellCharImpl)
	golisp.MakePrimitiveFunction("cell-color", "2", CellColorImpl)
	golisp.MakePrimitiveFunction("save-canvas", "0", SaveImpl)
	golisp.MakePrimitiveFunction("save-canvas-as", "1", SaveAsImpl)
	golisp.MakePrimitiveFunction("load-canvas", "0", LoadImpl)
	golisp.MakePrimitiveFunction("load-canvas-from", "1", LoadFromImpl)
	golisp.MakePrimitiveFunction("export-canvas", "0", ExportImpl)
	golisp.MakePrimitiveFunction("export-canvas-as", "1", ExportAsImpl)
	golisp.MakePrimitiveFunction("quit-paint", "0", QuitImpl)
}

var errNoCommander = errors.New("no canvas is open")

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

func sign(n int64) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func integerArg(d *golisp.Data, name string) (int, error) {
	if !golisp.IntegerP(d) {
		return 0, errors.New(name + " requires integer arguments")
	}
	return int(golisp.IntegerValue(d)), nil
}

func stringArg(d *golisp.Data, name string) (string, error) {
	if !golisp.StringP(d) {
		return "", errors.New(name + " requires a string argument")
	}
	return golisp.StringValue(d), nil
}

func moveImpl(dx, dy int) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if active == nil {
			return nil, errNoCommander
		}
		active.painter.MoveCursor(dx, dy)
		return golisp.LispTrue, nil
	}
}

// MoveImpl moves one step; each argument contributes only its sign.
func MoveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	dx, dy := golisp.Car(args), golisp.Cadr(args)
	if !golisp.IntegerP(dx) || !golisp.IntegerP(dy) {
		return nil, errors.New("move requires integer arguments")
	}
	active.painter.MoveCursor(sign(golisp.IntegerValue(dx)), sign(golisp.IntegerValue(dy)))
	return golisp.LispTrue, nil
}

func PaintImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	active.painter.PaintAtCursor()
	return golisp.LispTrue, nil
}

func PenImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	active.painter.TogglePen()
	return golisp.BooleanWithValue(active.painter.GetTools().PenDown), nil
}

func PenDownImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.BooleanWithValue(active.painter.GetTools().PenDown), nil
}

func BrushImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	active.painter.CycleBrush()
	return golisp.IntegerWithValue(int64(active.painter.GetTools().BrushIndex)), nil
}

func EraserImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	active.painter.EnterEraser()
	return golisp.LispTrue, nil
}

func ColorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	active.painter.CycleColor()
	return golisp.IntegerWithValue(int64(active.painter.GetTools().Color)), nil
}

func SetColorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	i, err := integerArg(golisp.Car(args), "set-color")
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(active.painter.SetColor(i)), nil
}

func ClearImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	active.painter.ClearCanvas()
	return golisp.LispTrue, nil
}

func CursorXImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.IntegerWithValue(int64(active.painter.GetCursor().Col)), nil
}

func CursorYImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.IntegerWithValue(int64(active.painter.GetCursor().Row)), nil
}

func cellArgs(args *golisp.Data, name string) (x, y int, err error) {
	if x, err = integerArg(golisp.Car(args), name); err != nil {
		return
	}
	y, err = integerArg(golisp.Cadr(args), name)
	return
}

// CellCharImpl returns the character code at (x y), or nil off the canvas.
func CellCharImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	x, y, err := cellArgs(args, "cell-char")
	if err != nil {
		return nil, err
	}
	cell, ok := active.painter.GetCanvas().Get(x, y)
	if !ok {
		return nil, nil
	}
	return golisp.IntegerWithValue(int64(cell.Ch)), nil
}

func CellColorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	x, y, err := cellArgs(args, "cell-color")
	if err != nil {
		return nil, err
	}
	cell, ok := active.painter.GetCanvas().Get(x, y)
	if !ok {
		return nil, nil
	}
	return golisp.IntegerWithValue(int64(cell.Color)), nil
}

func saveTo(path string) (*golisp.Data, error) {
	return golisp.BooleanWithValue(active.Save(path).OK()), nil
}

func SaveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return saveTo(active.fileName)
}

func SaveAsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	path, err := stringArg(golisp.Car(args), "save-canvas-as")
	if err != nil {
		return nil, err
	}
	return saveTo(path)
}

func loadFrom(path string) (*golisp.Data, error) {
	return golisp.BooleanWithValue(active.Load(path).OK()), nil
}

func LoadImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return loadFrom(active.fileName)
}

func LoadFromImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	path, err := stringArg(golisp.Car(args), "load-canvas-from")
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func ExportImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.BooleanWithValue(active.Export(active.exportName) == nil), nil
}

func ExportAsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	path, err := stringArg(golisp.Car(args), "export-canvas-as")
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(active.Export(path) == nil), nil
}

func QuitImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	active.Quit()
	return golisp.LispTrue, nil
}

// ParseEval evaluates a lisp expression and returns its printed value or error.
func ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.WithError(err).WithField("expr", command).Warn("lisp error")
		return err.Error()
	}
	log.WithField("expr", command).Debugf("SEXPR %s", golisp.String(value))
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a script file.
func ParseEvalFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = golisp.ParseAndEval("(begin " + string(b) + "\n)")
	return err
}
