// Package glpk adapts the GLPK simplex/branch-and-bound engine to the
// backend-neutral solving contract.
//
// One native problem is built per request: rows, columns and the constraint
// matrix are loaded once, and only the objective coefficients are rewritten
// between objectives. The problem handle is released on every exit path.
package glpk

import (
	"fmt"
	"math"

	glp "github.com/lukpank/go-glpk/glpk"

	"github.com/polyhedral/ilpd/ilp"
	"github.com/polyhedral/ilpd/solver"
)

func init() {
	solver.Register("glpk", func() solver.Solver { return &Backend{} })
}

// Backend is the GLPK adapter. It holds no state; every Solve call builds and
// destroys its own native problem.
type Backend struct{}

// Name implements solver.Solver.
func (*Backend) Name() string { return "GLPK" }

// Solve implements solver.Solver.
func (g *Backend) Solve(p *ilp.Polyhedron, objectives []ilp.Objective, dir ilp.Direction, usePresolve bool) ([]ilp.Solution, error) {
	if err := solver.Prepare(p, objectives); err != nil {
		return nil, err
	}
	a := p.A.Compact()
	if a.NumNonzero() == 0 {
		return solver.EmptySolutions(len(objectives)), nil
	}

	lp := glp.New()
	defer lp.Delete()
	lp.SetProbName("ilpd")
	if dir.IsMaximize() {
		lp.SetObjDir(glp.MAX)
	} else {
		lp.SetObjDir(glp.MIN)
	}

	rows := a.RowEntries()
	lp.AddRows(len(p.B))
	for i, b := range p.B {
		switch {
		case len(rows[i]) == 0:
			// A coefficient-free row constrains nothing; a bounded empty row
			// would assert 0 <= b[i] instead.
			lp.SetRowBnds(i+1, glp.FR, 0, 0)
		case p.DoubleBound:
			lp.SetRowBnds(i+1, glp.DB, 0, float64(b))
		default:
			lp.SetRowBnds(i+1, glp.UP, 0, float64(b))
		}
	}

	lp.AddCols(len(p.Variables))
	for j, v := range p.Variables {
		lo, hi := float64(v.Bound.Lower()), float64(v.Bound.Upper())
		if v.Bound.IsFixed() {
			lp.SetColBnds(j+1, glp.FX, lo, hi)
		} else {
			lp.SetColBnds(j+1, glp.DB, lo, hi)
		}
		if v.Bound.IsBinary() {
			lp.SetColKind(j+1, glp.BV)
		} else {
			lp.SetColKind(j+1, glp.IV)
		}
	}

	// Row-major load, 1-based with the leading dummy entry GLPK ignores.
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		ind := make([]int32, 1, len(row)+1)
		val := make([]float64, 1, len(row)+1)
		for _, e := range row {
			ind = append(ind, int32(e.Index+1))
			val = append(val, float64(e.Val))
		}
		lp.SetMatRow(i+1, ind, val)
	}

	solutions := make([]ilp.Solution, 0, len(objectives))
	for _, obj := range objectives {
		for j, v := range p.Variables {
			lp.SetObjCoef(j+1, obj[v.ID])
		}

		if sol, ok := g.runObjective(lp, p.Variables, usePresolve); ok {
			solutions = append(solutions, sol)
		} else {
			return nil, &solver.EngineError{
				Backend: g.Name(),
				Op:      "MipStatus",
				Msg:     fmt.Sprintf("unrecognized native status %d", lp.MipStatus()),
			}
		}
	}
	return solutions, nil
}

// runObjective solves the currently loaded objective. The bool result is
// false only for a native status outside GLPK's documented vocabulary, which
// is fatal for the whole call.
func (g *Backend) runObjective(lp *glp.Prob, vars []ilp.Variable, usePresolve bool) (ilp.Solution, bool) {
	sol := ilp.Solution{Status: ilp.Undefined, Solution: map[string]int{}}

	// Without the integer presolver GLPK needs an LP relaxation basis first.
	if !usePresolve {
		if err := lp.Simplex(glp.NewSmcp()); err != nil {
			sol.Status = ilp.SimplexFailed
			sol.Error = fmt.Sprintf("GLPK simplex phase failed: %v", err)
			return sol, true
		}
	}

	iocp := glp.NewIocp()
	iocp.SetPresolve(usePresolve)
	if err := lp.Intopt(iocp); err != nil {
		sol.Status = ilp.MIPFailed
		sol.Error = fmt.Sprintf("GLPK MIP solver failed: %v", err)
		return sol, true
	}

	switch lp.MipStatus() {
	case glp.UNDEF:
		sol.Status = ilp.Undefined
		sol.Error = "solution is undefined"
	case glp.FEAS:
		sol.Status = ilp.Feasible
		g.extract(lp, vars, &sol)
	case glp.INFEAS:
		sol.Status = ilp.Infeasible
		sol.Error = "infeasible solution exists"
	case glp.NOFEAS:
		sol.Status = ilp.NoFeasible
		sol.Error = "no feasible solution exists"
	case glp.OPT:
		sol.Status = ilp.Optimal
		g.extract(lp, vars, &sol)
	case glp.UNBND:
		sol.Status = ilp.Unbounded
		sol.Error = "problem is unbounded"
	default:
		return ilp.Solution{}, false
	}
	return sol, true
}

func (*Backend) extract(lp *glp.Prob, vars []ilp.Variable, sol *ilp.Solution) {
	sol.Objective = int(math.Round(lp.MipObjVal()))
	for j, v := range vars {
		sol.Solution[v.ID] = int(math.Round(lp.MipColVal(j + 1)))
	}
}
