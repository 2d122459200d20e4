package hexaly

import (
	"math"

	"github.com/polyhedral/ilpd/ilp"
	"github.com/polyhedral/ilpd/solver"
)

func init() {
	solver.Register("hexaly", func() solver.Solver { return &Backend{} })
}

// Backend solves integer programs with Hexaly. The engine rebuilds its model
// from scratch for every objective: expression handles are scoped to one
// optimizer instance and the model cannot be reopened after close. Local
// search has no presolve notion, so the toggle is ignored.
type Backend struct{}

// Name implements solver.Solver.
func (b *Backend) Name() string { return "Hexaly" }

// Solve implements solver.Solver.
func (b *Backend) Solve(p *ilp.Polyhedron, objectives []ilp.Objective, dir ilp.Direction, _ bool) ([]ilp.Solution, error) {
	if err := solver.Prepare(p, objectives); err != nil {
		return nil, err
	}
	a := p.A.Compact()
	if a.NumNonzero() == 0 {
		return solver.EmptySolutions(len(objectives)), nil
	}
	rows := a.RowEntries()

	solutions := make([]ilp.Solution, 0, len(objectives))
	for _, obj := range objectives {
		sol, err := b.solveObjective(p, rows, obj, dir)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, sol)
	}
	return solutions, nil
}

func (b *Backend) solveObjective(p *ilp.Polyhedron, rows [][]ilp.Entry, obj ilp.Objective, dir ilp.Direction) (ilp.Solution, error) {
	opt, err := NewOptimizer()
	if err != nil {
		return ilp.Solution{}, &solver.EngineError{Backend: b.Name(), Op: "NewOptimizer", Msg: err.Error()}
	}
	defer opt.Close()

	// Parameters must be set before the model is built.
	opt.SetVerbosity(0)

	vars := make([]Expr, len(p.Variables))
	for j, v := range p.Variables {
		vars[j], err = opt.IntVar(v.Bound.Lower(), v.Bound.Upper())
		if err != nil {
			return ilp.Solution{}, &solver.EngineError{Backend: b.Name(), Op: "IntVar", Msg: err.Error()}
		}
	}

	for i, entries := range rows {
		if len(entries) == 0 {
			continue
		}
		lhs, err := b.linearSum(opt, vars, entries)
		if err != nil {
			return ilp.Solution{}, err
		}
		rhs, err := opt.Scalar(p.B[i])
		if err != nil {
			return ilp.Solution{}, &solver.EngineError{Backend: b.Name(), Op: "Scalar", Msg: err.Error()}
		}
		upper, err := opt.Leq(lhs, rhs)
		if err != nil {
			return ilp.Solution{}, &solver.EngineError{Backend: b.Name(), Op: "Leq", Msg: err.Error()}
		}
		opt.Constrain(upper)

		if p.DoubleBound {
			zero, err := opt.Scalar(0)
			if err != nil {
				return ilp.Solution{}, &solver.EngineError{Backend: b.Name(), Op: "Scalar", Msg: err.Error()}
			}
			lower, err := opt.Geq(lhs, zero)
			if err != nil {
				return ilp.Solution{}, &solver.EngineError{Backend: b.Name(), Op: "Geq", Msg: err.Error()}
			}
			opt.Constrain(lower)
		}
	}

	objEntries := make([]ilp.Entry, 0, len(obj))
	for j, v := range p.Variables {
		if c, ok := obj[v.ID]; ok && c != 0 {
			objEntries = append(objEntries, ilp.Entry{Index: j, Val: int(math.Round(c))})
		}
	}
	objSum, err := b.linearSum(opt, vars, objEntries)
	if err != nil {
		return ilp.Solution{}, err
	}
	if dir.IsMaximize() {
		opt.Maximize(objSum)
	} else {
		opt.Minimize(objSum)
	}

	opt.CloseModel()
	opt.Solve()

	sol := ilp.Solution{Status: b.translate(opt), Solution: map[string]int{}}
	if sol.Status == ilp.Optimal {
		for j, v := range p.Variables {
			sol.Solution[v.ID] = opt.IntValue(vars[j])
		}
		sol.Objective = obj.Value(sol.Solution)
	} else {
		sol.Error = "engine state " + opt.State().String() + ", solution " + opt.SolutionStatus().String()
	}
	return sol, nil
}

// linearSum builds a sum node over coeff*var terms. Unit coefficients attach
// the variable directly; everything else goes through a product node.
func (b *Backend) linearSum(opt *Optimizer, vars []Expr, entries []ilp.Entry) (Expr, error) {
	fail := func(op string, err error) (Expr, error) {
		return Expr{}, &solver.EngineError{Backend: b.Name(), Op: op, Msg: err.Error()}
	}

	sum, err := opt.Sum()
	if err != nil {
		return fail("Sum", err)
	}
	for _, e := range entries {
		switch {
		case e.Val == 0:
		case e.Val == 1:
			opt.AddOperand(sum, vars[e.Index])
		default:
			coeff, err := opt.Scalar(e.Val)
			if err != nil {
				return fail("Scalar", err)
			}
			prod, err := opt.Prod()
			if err != nil {
				return fail("Prod", err)
			}
			opt.AddOperand(prod, coeff)
			opt.AddOperand(prod, vars[e.Index])
			opt.AddOperand(sum, prod)
		}
	}
	return sum, nil
}

// translate maps the engine outcome to the canonical status. The engine stops
// when its criteria are met rather than proving optimality, so a stopped run
// with a feasible incumbent reports Optimal; the solution status supplies the
// infeasible and no-solution cases the state alone cannot distinguish.
func (b *Backend) translate(opt *Optimizer) ilp.Status {
	if opt.State() != StateStopped {
		return ilp.Undefined
	}
	switch opt.SolutionStatus() {
	case SolutionOptimal, SolutionFeasible:
		return ilp.Optimal
	case SolutionInfeasible, SolutionInconsistent:
		return ilp.Infeasible
	default:
		return ilp.Undefined
	}
}
