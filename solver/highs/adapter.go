package highs

import (
	"math"

	"github.com/polyhedral/ilpd/ilp"
	"github.com/polyhedral/ilpd/solver"
)

func init() {
	solver.Register("highs", func() solver.Solver { return &Backend{} })
}

// Backend solves integer programs with HiGHS. One native instance is created
// per Solve call and released when the call returns; objectives reuse the
// instance by rewriting the column costs.
type Backend struct{}

// Name implements solver.Solver.
func (b *Backend) Name() string { return "HiGHS" }

// Solve implements solver.Solver.
func (b *Backend) Solve(p *ilp.Polyhedron, objectives []ilp.Objective, dir ilp.Direction, usePresolve bool) ([]ilp.Solution, error) {
	if err := solver.Prepare(p, objectives); err != nil {
		return nil, err
	}
	a := p.A.Compact()
	if a.NumNonzero() == 0 {
		return solver.EmptySolutions(len(objectives)), nil
	}

	s, err := NewSolver()
	if err != nil {
		return nil, &solver.EngineError{Backend: b.Name(), Op: "NewSolver", Msg: err.Error()}
	}
	defer s.Close()

	if err := b.buildModel(s, p, &a, dir, usePresolve); err != nil {
		return nil, err
	}

	solutions := make([]ilp.Solution, 0, len(objectives))
	for _, obj := range objectives {
		solutions = append(solutions, b.solveObjective(s, p, obj))
	}
	return solutions, nil
}

func (b *Backend) buildModel(s *Solver, p *ilp.Polyhedron, a *ilp.SparseMatrix, dir ilp.Direction, usePresolve bool) error {
	fail := func(op string, err error) error {
		return &solver.EngineError{Backend: b.Name(), Op: op, Msg: err.Error()}
	}

	if err := s.SetBoolOption("output_flag", false); err != nil {
		return fail("SetBoolOption", err)
	}
	presolve := "off"
	if usePresolve {
		presolve = "on"
	}
	if err := s.SetStringOption("presolve", presolve); err != nil {
		return fail("SetStringOption", err)
	}
	if err := s.SetMaximize(dir.IsMaximize()); err != nil {
		return fail("SetMaximize", err)
	}

	// Rows first so column entries can reference them. Coefficient-free rows
	// stay free on both sides: no backend treats them as a constraint.
	rows := a.RowEntries()
	for i, rhs := range p.B {
		lower, upper := math.Inf(-1), float64(rhs)
		if len(rows[i]) == 0 {
			upper = math.Inf(1)
		} else if p.DoubleBound {
			lower = 0
		}
		if err := s.AddRow(lower, upper); err != nil {
			return fail("AddRow", err)
		}
	}

	cols := a.ColumnEntries()
	for j, v := range p.Variables {
		entries := cols[j]
		index := make([]int, len(entries))
		value := make([]float64, len(entries))
		for k, e := range entries {
			index[k] = e.Index
			value[k] = float64(e.Val)
		}
		lo, hi := v.Bound.Lower(), v.Bound.Upper()
		if err := s.AddCol(0, float64(lo), float64(hi), index, value); err != nil {
			return fail("AddCol", err)
		}
	}
	if err := s.SetAllColsInteger(len(p.Variables)); err != nil {
		return fail("SetAllColsInteger", err)
	}
	return nil
}

func (b *Backend) solveObjective(s *Solver, p *ilp.Polyhedron, obj ilp.Objective) ilp.Solution {
	costs := make([]float64, len(p.Variables))
	for j, v := range p.Variables {
		costs[j] = obj[v.ID]
	}
	if err := s.SetColCosts(costs); err != nil {
		return ilp.Solution{
			Status:   ilp.Undefined,
			Solution: map[string]int{},
			Error:    err.Error(),
		}
	}

	sol, err := s.Run()
	if err != nil {
		return ilp.Solution{
			Status:   ilp.Undefined,
			Solution: map[string]int{},
			Error:    err.Error(),
		}
	}

	out := ilp.Solution{Status: translateStatus(sol.Status), Solution: map[string]int{}}
	if sol.Status.HasSolution() {
		for j, v := range p.Variables {
			out.Solution[v.ID] = int(math.Round(sol.ColValues[j]))
		}
		out.Objective = obj.Value(out.Solution)
	}
	if out.Status == ilp.Undefined {
		out.Error = "model status " + sol.Status.String()
	}
	return out
}

func translateStatus(ms ModelStatus) ilp.Status {
	switch ms {
	case ModelStatusOptimal:
		return ilp.Optimal
	case ModelStatusInfeasible:
		return ilp.Infeasible
	case ModelStatusUnbounded, ModelStatusUnboundedOrInfeasible:
		return ilp.Unbounded
	case ModelStatusModelEmpty:
		return ilp.EmptySpace
	default:
		return ilp.Undefined
	}
}
