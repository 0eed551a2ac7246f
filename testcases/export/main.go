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

// Command export renders all test cases with the software canvas and
// writes the results as PNG images, for visual inspection.
//
// Usage:
//
//	export [-config export.hcl] [-out dir] [-v]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/plotcanvas"
	"seehuhn.de/go/plotcanvas/softcanvas"
	"seehuhn.de/go/plotcanvas/testcases"
)

func main() {
	configFile := flag.String("config", "", "HCL configuration file")
	outDir := flag.String("out", "", "output directory (overrides the configuration)")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	plotcanvas.SetLogger(logger)

	cfg := defaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = loadConfig(*configFile)
		if err != nil {
			logger.Error("cannot load configuration", "file", *configFile, "err", err)
			os.Exit(1)
		}
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	failed, err := export(cfg, logger)
	if err != nil {
		logger.Error("export failed", "err", err)
		os.Exit(1)
	}
	if failed > 0 {
		logger.Warn("some expectations failed", "count", failed)
		os.Exit(2)
	}
}

// export renders the selected test cases into cfg.OutputDir and returns
// the number of test cases whose expectations did not match.
func export(cfg *config, logger *slog.Logger) (int, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return 0, err
	}

	failed := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if !cfg.wants(category) {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			ok, err := render(cfg, tc, filepath.Join(cfg.OutputDir, name+".png"))
			if err != nil {
				return failed, fmt.Errorf("%s: %w", name, err)
			}
			if !ok {
				failed++
			}
			logger.Debug("exported", "case", name, "checks_ok", ok)
		}
	}
	return failed, nil
}

func render(cfg *config, tc testcases.TestCase, fname string) (bool, error) {
	c := softcanvas.New(tc.Width, tc.Height, cfg.canvasOptions()...)
	b, err := plotcanvas.New(c)
	if err != nil {
		return false, err
	}
	if err := tc.Draw(b); err != nil {
		return false, err
	}
	if err := b.Present(); err != nil {
		return false, err
	}

	ok := true
	if cfg.checksApply() {
		for _, p := range tc.Expect {
			if !p.Check(c.Image()) {
				ok = false
			}
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return false, err
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return false, err
	}
	return ok, f.Close()
}
