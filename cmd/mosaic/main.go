// seehuhn.de/go/mosaic - approximate images with translucent rectangles
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

// Command mosaic approximates an image by translucent rectangles.
//
// The source image is first turned into a reference image by permuting the
// color channels of each quadrant at random.  A random set of rectangles is
// then improved by hill climbing towards the reference, and a snapshot of
// the best approximation is written every few generations.
//
// Usage:
//
//	mosaic [flags] [input.png]
//
// Settings are read from the file given by -config, if any, and can be
// overridden by the remaining flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"seehuhn.de/go/mosaic"
	"seehuhn.de/go/mosaic/config"
	"seehuhn.de/go/mosaic/imagefile"
	"seehuhn.de/go/mosaic/reference"
	"seehuhn.de/go/mosaic/report"
)

func main() {
	var (
		configFile  = flag.String("config", "", "TOML configuration file")
		generations = flag.Int("generations", 0, "number of generations")
		figures     = flag.Int("figures", 0, "number of initial figures")
		interval    = flag.Int("interval", 0, "generations between snapshots (0 = none)")
		seed        = flag.Uint64("seed", 0, "random seed (0 = random)")
		size        = flag.Int("size", 0, "rescale the input to a square of this size")
		outDir      = flag.String("out", "", "directory for snapshots")
		verbose     = flag.Bool("v", false, "log every accepted mutation")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mosaic.SetLogger(logger)

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Error("cannot read configuration", "err", err)
			os.Exit(2)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "generations":
			cfg.Generations = *generations
		case "figures":
			cfg.Figures = *figures
		case "interval":
			cfg.CheckpointInterval = *interval
		case "seed":
			cfg.Seed = *seed
		case "size":
			cfg.CanvasSize = *size
		case "out":
			cfg.OutputDir = *outDir
		}
	})
	if flag.NArg() > 0 {
		cfg.Input = flag.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	err := run(&cfg, logger)
	if status := exitStatus(err, cfg.Input, logger, os.Stderr); status != 0 {
		os.Exit(status)
	}
}

// exitStatus reports the outcome of run and returns the process exit
// status.  A missing input file is not a failure: nothing is done and the
// command exits normally.
func exitStatus(err error, input string, logger *slog.Logger, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, imagefile.ErrMissingInput):
		fmt.Fprintf(stderr, "%s was not found, nothing to do\n", input)
		return 0
	default:
		logger.Error("run failed", "err", err)
		return 1
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	filter, err := cfg.Filter()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	src, err := imagefile.Load(cfg.Input)
	if err != nil {
		return err
	}
	img, err := imagefile.Square(src, cfg.CanvasSize)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	plan := reference.RandomPlan(rng)
	ref, err := reference.Derive(img, plan)
	if err != nil {
		return err
	}
	logger.Info("reference image",
		"size", ref.Rect.Dx(), "channels", plan.String(), "seed", seed)
	if cfg.ReferenceOutput != "" {
		if err := imagefile.SavePNG(cfg.ReferenceOutput, ref); err != nil {
			return err
		}
	}

	start := mosaic.Generate(rng, ref.Rect.Size(), cfg.Figures, filter)
	logger.Info("initial gene", "figures", len(start.Figures), "filter", filter)

	frames := &imagefile.Frames{Dir: cfg.OutputDir}
	snapshot := mosaic.NewRenderer()
	snapshot.Scale = cfg.SnapshotScale
	search := &mosaic.Search{
		Reference:          ref,
		Start:              start,
		Rand:               rng,
		Generations:        cfg.Generations,
		CheckpointInterval: cfg.CheckpointInterval,
		OnCheckpoint: func(index int, s mosaic.Step) error {
			return frames.Write(index, snapshot.Render(s.Best))
		},
	}
	res, err := search.Run()
	if err != nil {
		return err
	}
	logger.Info("finished",
		"fitness", res.Fitness,
		"initial", res.Initial,
		"accepted", res.Accepted,
		"generations", len(res.History))

	if cfg.PlotOutput != "" && len(res.History) > 0 {
		if err := report.PlotHistory(res.History, "best fitness", cfg.PlotOutput); err != nil {
			return err
		}
	}
	if cfg.PDFOutput != "" {
		if err := report.WritePDF(cfg.PDFOutput, res.Best); err != nil {
			return err
		}
	}
	return nil
}
