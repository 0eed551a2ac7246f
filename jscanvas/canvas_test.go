// seehuhn.de/go/plotcanvas - a canvas drawing backend for plotting
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

//go:build js && wasm

package jscanvas

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"strings"
	"syscall/js"
	"testing"

	"seehuhn.de/go/plotcanvas"
)

func TestStringify(t *testing.T) {
	cases := []struct {
		in   js.Value
		want string
	}{
		{js.ValueOf(map[string]any{"code": 7}), `{"code":7}`},
		{js.ValueOf("boom"), `"boom"`},
		{js.ValueOf(3), "3"},
		{js.Null(), "null"},
		{js.Undefined(), "unknown"},
	}
	for _, c := range cases {
		if got := stringify(c.in); got != c.want {
			t.Errorf("stringify(%v) = %q, want %q", c.in, got, c.want)
		}
	}

	// a cyclic object makes JSON.stringify throw
	obj := js.Global().Get("Object").New()
	obj.Set("self", obj)
	if got := stringify(obj); got != "unknown" {
		t.Errorf("stringify(cyclic) = %q", got)
	}
}

func TestCallRecoversExceptions(t *testing.T) {
	obj := js.Global().Get("Object").New()
	obj.Set("boom", js.Global().Get("Function").New("throw {code: 7};"))
	obj.Set("ok", js.Global().Get("Function").New("return 42;"))

	res, err := call(obj, "ok")
	if err != nil || res.Int() != 42 {
		t.Errorf("call(ok) = %v, %v", res, err)
	}

	_, err = call(obj, "boom")
	var sErr *ScriptError
	if !errors.As(err, &sErr) {
		t.Fatalf("call(boom) error = %v", err)
	}
	if sErr.Error() != `{"code":7}` {
		t.Errorf("message = %q", sErr.Error())
	}
}

// fakeCanvas returns a plain JavaScript object which looks like a
// canvas, with getContext implemented by getContext.
func fakeCanvas(getContext string) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("width", 300)
	obj.Set("height", 150)
	obj.Set("getContext", js.Global().Get("Function").New("id", getContext))
	return obj
}

func TestWrapSize(t *testing.T) {
	c := Wrap(fakeCanvas("return null;"))
	if c.Width() != 300 || c.Height() != 150 {
		t.Errorf("size = %dx%d", c.Width(), c.Height())
	}
}

func TestNoContext(t *testing.T) {
	for _, body := range []string{
		"return null;",
		"return undefined;",
		"return {};", // not a 2D context
	} {
		_, err := plotcanvas.New(Wrap(fakeCanvas(body)))
		if !errors.Is(err, plotcanvas.ErrNoContext) {
			t.Errorf("%s: err = %v", body, err)
		}
	}
}

func TestGetContextThrows(t *testing.T) {
	_, err := plotcanvas.New(Wrap(fakeCanvas(`throw "no canvas for you";`)))
	if !errors.Is(err, plotcanvas.ErrNoContext) {
		t.Errorf("err = %v", err)
	}
	var sErr *ScriptError
	if !errors.As(err, &sErr) || sErr.Error() != `"no canvas for you"` {
		t.Errorf("err = %v", err)
	}
}

func TestOffscreenCanvas(t *testing.T) {
	c, err := New(64, 32)
	if errors.Is(err, ErrUnsupported) {
		t.Skip("no OffscreenCanvas in this JavaScript host")
	}
	if err != nil {
		t.Fatal(err)
	}

	b, err := plotcanvas.New(c)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := b.Size(); w != 64 || h != 32 {
		t.Errorf("size = %dx%d", w, h)
	}

	style := &plotcanvas.TextStyle{Size: 12, Color: plotcanvas.Black, Transform: plotcanvas.Rotate90}
	if err := b.DrawText("abc", style, image.Pt(10, 10)); err != nil {
		t.Error(err)
	}
	err = b.DrawCircle(image.Pt(5, 5), -1, plotcanvas.ShapeStyle{Color: plotcanvas.Red})
	var cErr *plotcanvas.CanvasError
	if !errors.As(err, &cErr) || cErr.Op != "arc" {
		t.Errorf("negative radius: err = %v", err)
	}
}

func TestContextLogsExceptions(t *testing.T) {
	var buf bytes.Buffer
	plotcanvas.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer plotcanvas.SetLogger(nil)

	obj := js.Global().Get("Object").New()
	obj.Set("stroke", js.Global().Get("Function").New(`throw "stroke failed";`))
	js.Global().Get("Function").New("o", `
		Object.defineProperty(o, "font", {set(v) { throw "bad font"; }});
		Object.defineProperty(o, "lineWidth", {value: 1, writable: false});
	`).Invoke(obj)
	ctx := &Context{v: obj}

	// none of these may panic
	ctx.SetFont("12px nonsense")
	ctx.SetLineWidth(2)
	ctx.Stroke()
	ctx.SetFillStyle("red")

	if got := obj.Get("fillStyle").String(); got != "red" {
		t.Errorf("fillStyle = %q", got)
	}
	if got := obj.Get("lineWidth").Int(); got != 1 {
		t.Errorf("lineWidth = %d", got)
	}

	out := buf.String()
	for _, want := range []string{
		`prop=font err="\"bad font\""`,
		"prop=lineWidth",
		`method=stroke err="\"stroke failed\""`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "prop=fillStyle") {
		t.Errorf("successful assignment was logged:\n%s", out)
	}
}
