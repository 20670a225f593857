package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rednote-trend-be/pkg/grammar"
	"rednote-trend-be/pkg/store"

	"github.com/google/uuid"
)

// StepName identifies one of the four mock backend steps.
type StepName string

const (
	StepCollect StepName = "collect"
	StepAnalyze StepName = "analyze"
	StepCreate  StepName = "create"
	StepLink    StepName = "link"
)

// ErrCompleted is returned by Advance when every step has already run.
var ErrCompleted = errors.New("pipeline: all steps completed")

// step binds a name to its completion flag, simulated latency and body. The
// run body writes into exactly one region of the session and flips its flag
// only on success, so a failed step is retried by the next message.
type step struct {
	name       StepName
	delayUnits int
	done       func(*store.Session) bool
	run        func(context.Context, *store.Session) error
}

// Runner drives the collect -> analyze -> create -> link sequence. Each call
// to Advance runs exactly the first incomplete step; the conversation engine
// calls it once per message turn while the session is in processing.
type Runner struct {
	gen   *grammar.Generator
	unit  time.Duration
	steps []step
}

// NewRunner creates a runner. unit is one simulated latency time-unit; the
// steps wait 2, 2, 3 and 1 units respectively, standing in for the real
// search, analysis, generation and upload backends this build mocks out.
func NewRunner(gen *grammar.Generator, unit time.Duration) *Runner {
	r := &Runner{gen: gen, unit: unit}
	r.steps = []step{
		{StepCollect, 2, func(s *store.Session) bool { return s.Pipeline.Collected }, r.collect},
		{StepAnalyze, 2, func(s *store.Session) bool { return s.Pipeline.Analyzed }, r.analyze},
		{StepCreate, 3, func(s *store.Session) bool { return s.Pipeline.Created }, r.create},
		{StepLink, 1, func(s *store.Session) bool { return s.Pipeline.Linked }, r.link},
	}
	return r
}

// Next returns the first incomplete step name, or false when all four are
// done.
func (r *Runner) Next(s *store.Session) (StepName, bool) {
	for _, st := range r.steps {
		if !st.done(s) {
			return st.name, true
		}
	}
	return "", false
}

// Completed reports whether every step has run.
func (r *Runner) Completed(s *store.Session) bool {
	_, pending := r.Next(s)
	return !pending
}

// Advance runs the first incomplete step after its simulated latency and
// returns its name. On error the step's flag is left false so the same step
// runs again on the next turn.
func (r *Runner) Advance(ctx context.Context, s *store.Session) (StepName, error) {
	for _, st := range r.steps {
		if st.done(s) {
			continue
		}
		if err := r.wait(ctx, st.delayUnits); err != nil {
			return st.name, err
		}
		if err := st.run(ctx, s); err != nil {
			return st.name, fmt.Errorf("pipeline step %s: %w", st.name, err)
		}
		return st.name, nil
	}
	return "", ErrCompleted
}

func (r *Runner) wait(ctx context.Context, units int) error {
	d := time.Duration(units) * r.unit
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// opaqueID returns a compact random identifier for mock records and links.
func opaqueID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
