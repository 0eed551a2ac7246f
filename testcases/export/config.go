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

package main

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/plotcanvas"
	"seehuhn.de/go/plotcanvas/softcanvas"
)

// config holds the settings read from an export configuration file.
//
// Example:
//
//	output_dir = "debug"
//	background = "#ffffff"
//	font       = "12px sans-serif"
//	line_cap   = "round"
//	line_join  = "bevel"
//	categories = ["text", "shape"]
type config struct {
	OutputDir  string
	Background *plotcanvas.Color
	Font       string
	LineCap    graphics.LineCapStyle
	LineJoin   graphics.LineJoinStyle
	Categories []string // empty means all
}

func defaultConfig() *config {
	return &config{
		OutputDir: "debug",
		LineCap:   graphics.LineCapButt,
		LineJoin:  graphics.LineJoinMiter,
	}
}

var configSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "output_dir"},
		{Name: "background"},
		{Name: "font"},
		{Name: "line_cap"},
		{Name: "line_join"},
		{Name: "categories"},
	},
}

// loadConfig reads an HCL configuration file.  Settings which are not
// present in the file keep their default values.
func loadConfig(fname string) (*config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(fname)
	if diags.HasErrors() {
		return nil, fmt.Errorf("HCL parse errors: %s", diags.Error())
	}
	return decodeConfig(file.Body)
}

func decodeConfig(body hcl.Body) (*config, error) {
	content, diags := body.Content(configSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %s", diags.Error())
	}

	cfg := defaultConfig()
	for name, attr := range content.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%s: %s", name, diags.Error())
		}

		switch name {
		case "output_dir":
			s, err := stringValue(name, val)
			if err != nil {
				return nil, err
			}
			cfg.OutputDir = s
		case "background":
			s, err := stringValue(name, val)
			if err != nil {
				return nil, err
			}
			c, err := plotcanvas.ParseHex(s, 1)
			if err != nil {
				return nil, err
			}
			cfg.Background = &c
		case "font":
			s, err := stringValue(name, val)
			if err != nil {
				return nil, err
			}
			cfg.Font = s
		case "line_cap":
			s, err := stringValue(name, val)
			if err != nil {
				return nil, err
			}
			switch s {
			case "butt":
				cfg.LineCap = graphics.LineCapButt
			case "round":
				cfg.LineCap = graphics.LineCapRound
			case "square":
				cfg.LineCap = graphics.LineCapSquare
			default:
				return nil, fmt.Errorf("line_cap: unknown cap style %q", s)
			}
		case "line_join":
			s, err := stringValue(name, val)
			if err != nil {
				return nil, err
			}
			switch s {
			case "miter":
				cfg.LineJoin = graphics.LineJoinMiter
			case "round":
				cfg.LineJoin = graphics.LineJoinRound
			case "bevel":
				cfg.LineJoin = graphics.LineJoinBevel
			default:
				return nil, fmt.Errorf("line_join: unknown join style %q", s)
			}
		case "categories":
			list, err := stringList(name, val)
			if err != nil {
				return nil, err
			}
			cfg.Categories = list
		}
	}
	return cfg, nil
}

func stringValue(name string, val cty.Value) (string, error) {
	if val.IsNull() || val.Type() != cty.String {
		return "", fmt.Errorf("%s: expected a string", name)
	}
	return val.AsString(), nil
}

func stringList(name string, val cty.Value) ([]string, error) {
	ty := val.Type()
	if val.IsNull() || !(ty.IsListType() || ty.IsTupleType() || ty.IsSetType()) {
		return nil, fmt.Errorf("%s: expected a list of strings", name)
	}
	var res []string
	it := val.ElementIterator()
	for it.Next() {
		_, elem := it.Element()
		s, err := stringValue(name, elem)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

// wants reports whether test cases of the given category are exported.
func (cfg *config) wants(category string) bool {
	return len(cfg.Categories) == 0 || slices.Contains(cfg.Categories, category)
}

// checksApply reports whether the test case expectations are meaningful for
// images rendered with this configuration.  The expectations assume a
// transparent background, butt caps and miter joins.
func (cfg *config) checksApply() bool {
	return cfg.Background == nil &&
		cfg.LineCap == graphics.LineCapButt &&
		cfg.LineJoin == graphics.LineJoinMiter
}

// canvasOptions translates the configuration into options for a
// software canvas.
func (cfg *config) canvasOptions() []softcanvas.Option {
	opts := []softcanvas.Option{
		softcanvas.WithLineCap(cfg.LineCap),
		softcanvas.WithLineJoin(cfg.LineJoin),
	}
	if bg := cfg.Background; bg != nil {
		a := uint8(max(0, min(1, bg.Alpha))*255 + 0.5)
		opts = append(opts, softcanvas.WithBackground(color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: a}))
	}
	if cfg.Font != "" {
		opts = append(opts, softcanvas.WithFont(cfg.Font))
	}
	return opts
}
