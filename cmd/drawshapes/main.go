// seehuhn.de/go/drawing - integer rasterization of simple shapes
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

// Command drawshapes draws a random scene, or one of the named test cases,
// and writes the result to a PNG or BMP file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"math/rand/v2"
	"os"
	"slices"

	"seehuhn.de/go/drawing"
	"seehuhn.de/go/drawing/cmd/drawshapes/internal/config"
	"seehuhn.de/go/drawing/pdfout"
	"seehuhn.de/go/drawing/testcases"
)

func main() {
	conf, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if conf.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	drawing.SetLogger(logger)

	if err := run(conf, logger); err != nil {
		logger.Error("drawshapes failed", "error", err)
		os.Exit(1)
	}
}

func run(conf *config.Config, logger *slog.Logger) error {
	width, height, shapes, err := buildScene(conf)
	if err != nil {
		return err
	}
	logger.Info("scene ready", "width", width, "height", height, "shapes", len(shapes))

	img := render(width, height, shapes)
	if err := writeImage(conf.Output, img, conf.Scale); err != nil {
		return err
	}
	logger.Info("image written", "file", conf.Output, "scale", conf.Scale)

	if conf.PDF != "" {
		opt := &pdfout.Options{Scale: float64(conf.Scale), Outlines: conf.Outlines}
		if err := pdfout.WriteFile(conf.PDF, width, height, shapes, opt); err != nil {
			return fmt.Errorf("%s: %w", conf.PDF, err)
		}
		logger.Info("PDF written", "file", conf.PDF)
	}
	return nil
}

// buildScene returns the shapes selected by the configuration.
func buildScene(conf *config.Config) (int, int, []drawing.Shape, error) {
	if conf.Case != "" {
		tc, ok := testcases.Find(conf.Case)
		if !ok {
			return 0, 0, nil, fmt.Errorf("unknown test case %q", conf.Case)
		}
		return tc.Width, tc.Height, tc.Shapes, nil
	}

	seed := conf.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	drawing.Logger().Debug("random scene", "seed", seed)

	// geometry and colors use independent streams
	f := drawing.NewFactory(
		rand.New(rand.NewPCG(seed, 1)),
		drawing.NewColorAllocator(rand.New(rand.NewPCG(seed, 2))),
	)

	if len(conf.Kinds) == 0 {
		shapes, err := f.Scene(conf.Width, conf.Height, conf.Count)
		return conf.Width, conf.Height, shapes, err
	}

	var shapes []drawing.Shape
	for _, name := range slices.Sorted(maps.Keys(conf.Kinds)) {
		k, err := drawing.ParseKind(name)
		if err != nil {
			return 0, 0, nil, err
		}
		for range conf.Kinds[name] {
			s, err := f.Shape(k, conf.Width, conf.Height)
			if err != nil {
				return 0, 0, nil, err
			}
			shapes = append(shapes, s)
		}
	}
	return conf.Width, conf.Height, shapes, nil
}
