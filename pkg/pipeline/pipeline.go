// Package pipeline composes corrections into ordered sequences. A Pipeline
// runs its stages in order, feeding each stage the previous stage's output,
// and stops at the first failure without returning a partial result.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"adcorr/pkg/frames"
)

var (
	// ErrUnknownPipeline is returned by Build for names it does not know.
	ErrUnknownPipeline = errors.New("unknown pipeline")

	// ErrMissingInput is returned when a pipeline needs a frame it was not given.
	ErrMissingInput = errors.New("missing pipeline input")
)

// Stage is a single named step of a pipeline.
type Stage struct {
	Name  string
	Apply func(*frames.Stack) (*frames.Stack, error)
}

// Pipeline is a named, fixed sequence of stages.
type Pipeline struct {
	Name   string
	Stages []Stage

	logger zerolog.Logger
}

// New creates a pipeline that logs nothing.
func New(name string, stages ...Stage) *Pipeline {
	return &Pipeline{Name: name, Stages: stages, logger: zerolog.Nop()}
}

// WithLogger returns a copy of the pipeline that reports stage progress to l.
func (p *Pipeline) WithLogger(l zerolog.Logger) *Pipeline {
	c := *p
	c.logger = l.With().Str("pipeline", p.Name).Logger()
	return &c
}

// StageNames returns the names of the stages in execution order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.Stages))
	for i, s := range p.Stages {
		names[i] = s.Name
	}
	return names
}

// Run applies every stage in order to stack.
func (p *Pipeline) Run(stack *frames.Stack) (*frames.Stack, error) {
	current := stack
	for i, stage := range p.Stages {
		start := time.Now()
		next, err := stage.Apply(current)
		if err != nil {
			p.logger.Error().Err(err).Str("stage", stage.Name).Int("index", i).Msg("stage failed")
			return nil, fmt.Errorf("pipeline %s: stage %s: %w", p.Name, stage.Name, err)
		}
		p.logger.Debug().
			Str("stage", stage.Name).
			Int("index", i).
			Ints("shape", next.Shape()).
			Dur("elapsed", time.Since(start)).
			Msg("stage complete")
		current = next
	}
	return current, nil
}
