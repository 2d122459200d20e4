// Package solver defines the backend-neutral solving contract and the
// registry that maps configured backend names to adapter instances.
//
// A Solver turns one polyhedron and a batch of objectives into one Solution
// per objective. Implementations are stateless and re-entrant: they hold no
// per-request fields, and any native engine handle they need is created and
// destroyed inside a single Solve call.
package solver

import (
	"fmt"

	"github.com/polyhedral/ilpd/ilp"
)

// Solver is the capability interface implemented by every backend adapter.
type Solver interface {
	// Solve produces one solution per objective, in input order, all against
	// the same polyhedron. usePresolve is threaded to engines that have a
	// presolve concept and ignored by the rest. The returned error is an
	// *ilp.InputError for client-caused problems and an *EngineError for
	// fatal backend faults; objective-scoped engine failures are reported in
	// the affected Solution instead.
	Solve(p *ilp.Polyhedron, objectives []ilp.Objective, dir ilp.Direction, usePresolve bool) ([]ilp.Solution, error)

	// Name identifies the backend for diagnostics and configuration echo.
	Name() string
}

// EngineError reports a fatal fault inside a native solver engine. The
// message is an opaque diagnostic; it never carries native pointers or
// handles.
type EngineError struct {
	Backend string
	Op      string
	Msg     string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s failed: %s", e.Backend, e.Op, e.Msg)
}

// Prepare runs the shared input validation every adapter performs before
// touching its engine: structural polyhedron checks, then referential
// objective checks.
func Prepare(p *ilp.Polyhedron, objectives []ilp.Objective) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return ilp.ValidateObjectives(p.Variables, objectives)
}

// EmptySolutions returns the degenerate result for a polyhedron whose
// constraint matrix has no nonzero entries: one EmptySpace solution per
// objective, produced without invoking any native engine.
func EmptySolutions(n int) []ilp.Solution {
	out := make([]ilp.Solution, n)
	for i := range out {
		out[i] = ilp.Solution{Status: ilp.EmptySpace, Solution: map[string]int{}}
	}
	return out
}
