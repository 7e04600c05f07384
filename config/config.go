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

// Package config holds the settings of a mosaic run.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/mosaic"
)

// Config describes one run.  The field tags give the keys used in
// configuration files.
type Config struct {
	// Input is the source image.
	Input string `toml:"input"`

	// OutputDir receives the numbered snapshots.
	OutputDir string `toml:"output_dir"`

	// Generations is the number of mutations tried.
	Generations int `toml:"generation_count"`

	// Figures is the number of figures attempted for the initial Gene.
	Figures int `toml:"figure_count"`

	// CheckpointInterval is the number of generations between snapshots.
	// Zero disables snapshots.
	CheckpointInterval int `toml:"checkpoint_interval"`

	// CanvasSize, if positive, rescales the source to a square of this
	// many pixels.  Otherwise the source must already be square.
	CanvasSize int `toml:"canvas_size"`

	// Seed initialises the random number generator.  Zero picks a random
	// seed.
	Seed uint64 `toml:"seed"`

	// AreaFilter selects how initial figures are measured: "shoelace" or
	// "bbox".
	AreaFilter string `toml:"area_filter"`

	// SnapshotScale magnifies the saved snapshots.
	SnapshotScale int `toml:"snapshot_scale"`

	// ReferenceOutput, PlotOutput and PDFOutput name additional output
	// files.  Empty strings disable the corresponding output.
	ReferenceOutput string `toml:"reference_output"`
	PlotOutput      string `toml:"plot_output"`
	PDFOutput       string `toml:"pdf_output"`
}

// Default returns the settings of the reference design: 10001 generations
// starting from 128 figures, with a snapshot every 100 generations.
func Default() Config {
	return Config{
		Input:              "input.png",
		OutputDir:          ".",
		Generations:        10001,
		Figures:            128,
		CheckpointInterval: 100,
		AreaFilter:         mosaic.ShoelaceArea.String(),
		SnapshotScale:      1,
		ReferenceOutput:    "beautiful.png",
	}
}

// Load reads a TOML file.  Settings missing from the file keep their
// default values, and unknown keys are an error.
func Load(name string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(name, &cfg)
	if err != nil {
		return cfg, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%s: unknown keys %s", name, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("no input image"))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generation_count %d is negative", c.Generations))
	}
	if c.Figures < 1 {
		errs = append(errs, fmt.Errorf("figure_count %d is not positive", c.Figures))
	}
	if c.CheckpointInterval < 0 {
		errs = append(errs, fmt.Errorf("checkpoint_interval %d is negative", c.CheckpointInterval))
	}
	if c.CanvasSize < 0 {
		errs = append(errs, fmt.Errorf("canvas_size %d is negative", c.CanvasSize))
	}
	if c.SnapshotScale < 1 {
		errs = append(errs, fmt.Errorf("snapshot_scale %d is not positive", c.SnapshotScale))
	}
	if _, err := mosaic.ParseAreaFilter(c.AreaFilter); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Filter returns the area filter selected by c.AreaFilter.
func (c *Config) Filter() (mosaic.AreaFilter, error) {
	return mosaic.ParseAreaFilter(c.AreaFilter)
}
