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

package mosaic

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
)

// State is a phase of the search loop.
type State int

// States of the search loop.  A run starts in Initialized, cycles through
// Evaluating, then Accepted or Rejected, and optionally Checkpointing, once
// per generation, and ends in Done.
const (
	Initialized State = iota
	Evaluating
	Accepted
	Rejected
	Checkpointing
	Done
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Evaluating:
		return "evaluating"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Checkpointing:
		return "checkpointing"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Step describes the running best after a generation.
type Step struct {
	Generation int
	Best       *Gene
	Fitness    float64
}

// Search is a (1+1) hill climber.  Every generation it mutates one figure
// of the current best Gene, renders the result and keeps it only if its
// fitness is strictly lower.  The run ends after a fixed number of
// generations.
type Search struct {
	// Reference is the image to approximate.  It is only read.
	Reference *image.RGBA

	// Start is the initial Gene.  Its size must match Reference.
	Start *Gene

	// Rand is the source of all randomness.  If nil, a generator seeded
	// from the runtime is used.
	Rand *rand.Rand

	// Generations is the number of mutations to try.
	Generations int

	// CheckpointInterval is the number of generations between calls to
	// OnCheckpoint.  Zero disables checkpoints.
	CheckpointInterval int

	// OnAccept, if set, is called whenever a mutation is accepted.
	OnAccept func(Step)

	// OnCheckpoint, if set, is called after generation i whenever i is a
	// multiple of CheckpointInterval, with index i/CheckpointInterval.
	// A non-nil error stops the search.
	OnCheckpoint func(index int, s Step) error

	state State
}

// Result is the outcome of a search.
type Result struct {
	Best     *Gene
	Fitness  float64
	Initial  float64 // fitness of the start Gene
	Accepted int     // number of accepted mutations

	// History[i] is the best fitness after generation i.
	History []float64
}

// State returns the phase the search is in.  After Run returns it is Done,
// unless the search was aborted.
func (s *Search) State() State {
	return s.state
}

// Run executes the search.
//
// If OnCheckpoint fails, Run stops and returns the error together with
// the best result found so far.
func (s *Search) Run() (*Result, error) {
	if s.Start == nil || s.Reference == nil {
		return nil, errors.New("search needs a start gene and a reference image")
	}
	if s.Generations < 0 || s.CheckpointInterval < 0 {
		return nil, fmt.Errorf("invalid search budget: %d generations, interval %d",
			s.Generations, s.CheckpointInterval)
	}
	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	log := Logger()

	s.state = Initialized
	renderer := NewRenderer()
	best := s.Start
	bestFitness, err := Fitness(renderer.Render(best), s.Reference)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Initial: bestFitness,
		History: make([]float64, 0, s.Generations),
	}

	for gen := range s.Generations {
		s.state = Evaluating
		child := best.Mutate(rng)
		fitness := distance(renderer.Render(child), s.Reference)

		if fitness < bestFitness {
			s.state = Accepted
			best, bestFitness = child, fitness
			res.Accepted++
			log.Debug("accepted", slog.Int("generation", gen), slog.Float64("fitness", fitness))
			if s.OnAccept != nil {
				s.OnAccept(Step{Generation: gen, Best: best, Fitness: bestFitness})
			}
		} else {
			s.state = Rejected
		}
		res.History = append(res.History, bestFitness)

		if s.CheckpointInterval > 0 && gen%s.CheckpointInterval == 0 {
			s.state = Checkpointing
			index := gen / s.CheckpointInterval
			log.Info("checkpoint",
				slog.Int("generation", gen),
				slog.Int("checkpoint", index),
				slog.Float64("fitness", bestFitness))
			if s.OnCheckpoint != nil {
				err := s.OnCheckpoint(index, Step{Generation: gen, Best: best, Fitness: bestFitness})
				if err != nil {
					res.Best, res.Fitness = best, bestFitness
					return res, fmt.Errorf("checkpoint %d: %w", index, err)
				}
			}
		}
	}

	s.state = Done
	res.Best, res.Fitness = best, bestFitness
	return res, nil
}
