package plotcanvas

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestColorCSS(t *testing.T) {
	cases := []struct {
		in   Color
		want string
	}{
		{Color{0, 0, 0, 0.5}, "rgba(0,0,0,0.5)"},
		{Color{255, 128, 1, 1}, "rgba(255,128,1,1)"},
		{Color{10, 20, 30, 0}, "rgba(10,20,30,0)"},
		{Color{1, 2, 3, 0.25}, "rgba(1,2,3,0.25)"},
		{Color{1, 2, 3, -1.5}, "rgba(1,2,3,0)"},
		{Color{1, 2, 3, 1.7}, "rgba(1,2,3,1)"},
		{Color{1, 2, 3, math.NaN()}, "rgba(1,2,3,0)"},
	}
	for _, tc := range cases {
		got := tc.in.CSS()
		if got != tc.want {
			t.Errorf("%v: got %q, want %q", tc.in, got, tc.want)
		}
		if !strings.HasSuffix(got, ")") {
			t.Errorf("%q is not terminated", got)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#336699", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Color{0x33, 0x66, 0x99, 0.5}); c != want {
		t.Errorf("got %v, want %v", c, want)
	}

	c, err = ParseHex("#fff", 1)
	if err != nil {
		t.Fatal(err)
	}
	if c != White {
		t.Errorf("got %v, want %v", c, White)
	}

	if _, err := ParseHex("blue", 1); err == nil {
		t.Error("expected error for non-hex colour")
	}
}

func TestMix(t *testing.T) {
	c := Black.Mix(0.3)
	if c.Alpha != 0.3 || c.R != 0 {
		t.Errorf("unexpected mix result %v", c)
	}
	if !Red.Mix(0).IsTransparent() {
		t.Error("mix(0) must be transparent")
	}
}

func TestFontTransformAngle(t *testing.T) {
	cases := []struct {
		tr   FontTransform
		want float64
	}{
		{RotateNone, 0},
		{Rotate90, math.Pi / 2},
		{Rotate180, math.Pi},
		{Rotate270, 3 * math.Pi / 2},
	}
	for _, tc := range cases {
		if got := tc.tr.Angle(); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("transform %d: got %g, want %g", tc.tr, got, tc.want)
		}
	}
}

func TestAnchors(t *testing.T) {
	h := map[HPos]string{HPosLeft: "start", HPosCenter: "center", HPosRight: "end"}
	for pos, want := range h {
		if got := pos.TextAlign(); got != want {
			t.Errorf("HPos %d: got %q, want %q", pos, got, want)
		}
	}
	v := map[VPos]string{
		VPosBaseline: "alphabetic",
		VPosTop:      "top",
		VPosCenter:   "middle",
		VPosBottom:   "bottom",
	}
	for pos, want := range v {
		if got := pos.TextBaseline(); got != want {
			t.Errorf("VPos %d: got %q, want %q", pos, got, want)
		}
	}
}

func TestFont(t *testing.T) {
	cases := []struct {
		style TextStyle
		want  string
	}{
		{TextStyle{Family: "serif", Size: 20}, "normal 20px serif"},
		{TextStyle{Family: "Go Mono", Size: 12.5, Style: FontBold}, "bold 12.5px Go Mono"},
		{TextStyle{Size: 8, Style: FontItalic}, "italic 8px sans-serif"},
		{TextStyle{Family: "monospace", Size: 9, Style: FontOblique}, "oblique 9px monospace"},
	}
	for _, tc := range cases {
		if got := tc.style.Font(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

type jsonError struct{}

func (jsonError) Error() string                { return "plain" }
func (jsonError) MarshalJSON() ([]byte, error) { return []byte(`{"name":"TypeError"}`), nil }

type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestDescribe(t *testing.T) {
	if got := describe(errors.New("boom")); got != "boom" {
		t.Errorf("got %q", got)
	}
	if got := describe(jsonError{}); got != `{"name":"TypeError"}` {
		t.Errorf("got %q", got)
	}
	if got := describe(emptyError{}); got != "unknown" {
		t.Errorf("got %q", got)
	}
	if got := describe(nil); got != "unknown" {
		t.Errorf("got %q", got)
	}
}
