// Package cplex adapts the CPLEX engine via the gpx callable-library binding.
//
// gpx keeps one problem open per process, so the adapter builds a fresh
// problem for every objective and closes it before moving on, and a package
// mutex serializes the CreateProb-to-CloseCplex span so concurrent Solve
// calls never interleave on the shared problem. The engine does not report a
// fine-grained status through this surface: a solve that yields a solution is
// Optimal, a solve that cannot produce one is reported as Infeasible for that
// objective.
package cplex

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-opt/gpx"
	"github.com/pkg/errors"

	"github.com/polyhedral/ilpd/ilp"
	"github.com/polyhedral/ilpd/solver"
)

func init() {
	solver.Register("cplex", func() solver.Solver { return &Backend{} })
}

// probMu guards the gpx package-global problem. Every gpx call operates on
// one implicit process-wide model, so the whole build-solve-close span for
// one objective must be exclusive.
var probMu sync.Mutex

// Backend solves integer programs with CPLEX. The presolve toggle is left to
// the engine defaults.
type Backend struct{}

// Name implements solver.Solver.
func (b *Backend) Name() string { return "CPLEX" }

// Solve implements solver.Solver.
func (b *Backend) Solve(p *ilp.Polyhedron, objectives []ilp.Objective, dir ilp.Direction, _ bool) ([]ilp.Solution, error) {
	if err := solver.Prepare(p, objectives); err != nil {
		return nil, err
	}
	a := p.A.Compact()
	if a.NumNonzero() == 0 {
		return solver.EmptySolutions(len(objectives)), nil
	}

	rows, elems := translateRows(p, &a)
	cols := translateCols(p)

	solutions := make([]ilp.Solution, 0, len(objectives))
	for k, obj := range objectives {
		sol, err := b.solveObjective(p, obj, dir, k, rows, cols, elems)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, sol)
	}
	return solutions, nil
}

// translateRows builds the constraint rows and their nonzero elements. Each
// row with coefficients becomes a sense-"L" row; with DoubleBound a paired
// sense-"G" row with zero right-hand side repeats the same coefficients.
// Coefficient-free rows are vacuous and emitted for no backend, so the engine
// row indices are remapped here.
func translateRows(p *ilp.Polyhedron, a *ilp.SparseMatrix) ([]gpx.InputRow, []gpx.InputElem) {
	rows := make([]gpx.InputRow, 0, len(p.B))
	var elems []gpx.InputElem

	grouped := a.RowEntries()
	addRow := func(i int, name, sense string, rhs float64) {
		idx := len(rows)
		rows = append(rows, gpx.InputRow{Name: name, Sense: sense, Rhs: rhs})
		for _, e := range grouped[i] {
			elems = append(elems, gpx.InputElem{
				RowIndex: idx,
				ColIndex: e.Index,
				Value:    float64(e.Val),
			})
		}
	}

	for i, rhs := range p.B {
		if len(grouped[i]) == 0 {
			continue
		}
		addRow(i, fmt.Sprintf("c%d", i), "L", float64(rhs))
	}
	if p.DoubleBound {
		for i := range p.B {
			if len(grouped[i]) == 0 {
				continue
			}
			addRow(i, fmt.Sprintf("c%d_lo", i), "G", 0)
		}
	}
	return rows, elems
}

func translateCols(p *ilp.Polyhedron) []gpx.InputCol {
	cols := make([]gpx.InputCol, 0, len(p.Variables))
	for _, v := range p.Variables {
		typ := "I"
		if v.Bound.IsBinary() {
			typ = "B"
		}
		cols = append(cols, gpx.InputCol{
			Name:  v.ID,
			Type:  typ,
			BndLo: float64(v.Bound.Lower()),
			BndUp: float64(v.Bound.Upper()),
		})
	}
	return cols
}

func (b *Backend) solveObjective(p *ilp.Polyhedron, obj ilp.Objective, dir ilp.Direction, k int, rows []gpx.InputRow, cols []gpx.InputCol, elems []gpx.InputElem) (ilp.Solution, error) {
	probMu.Lock()
	defer probMu.Unlock()

	fatal := func(op string, err error) (ilp.Solution, error) {
		_ = gpx.CloseCplex()
		return ilp.Solution{}, &solver.EngineError{Backend: b.Name(), Op: op, Msg: err.Error()}
	}

	if err := gpx.CreateProb(fmt.Sprintf("objective_%d", k)); err != nil {
		return ilp.Solution{}, &solver.EngineError{Backend: b.Name(), Op: "CreateProb", Msg: err.Error()}
	}
	if err := gpx.OutputToScreen(false); err != nil {
		return fatal("OutputToScreen", err)
	}

	// gpx exposes no objective-sense call, so maximization negates the cost
	// vector handed to the engine. The reported objective is recomputed
	// locally either way, so the sign trick never leaks out.
	sign := 1.0
	if dir.IsMaximize() {
		sign = -1.0
	}
	objCoefs := make([]gpx.InputObjCoef, 0, len(obj))
	for j, v := range p.Variables {
		if c, ok := obj[v.ID]; ok && c != 0 {
			objCoefs = append(objCoefs, gpx.InputObjCoef{ColIndex: j, Value: sign * c})
		}
	}

	if err := gpx.NewRows(rows); err != nil {
		return fatal("NewRows", err)
	}
	if err := gpx.NewCols(objCoefs, cols); err != nil {
		return fatal("NewCols", err)
	}
	if err := gpx.ChgCoefList(elems); err != nil {
		return fatal("ChgCoefList", err)
	}
	if err := gpx.MipOpt(); err != nil {
		return fatal("MipOpt", errors.Wrap(err, "failed to optimize MIP"))
	}

	var objVal float64
	var sRows []gpx.SolnRow
	var sCols []gpx.SolnCol
	sol := ilp.Solution{Solution: map[string]int{}}
	if err := gpx.GetMipSolution(&objVal, &sRows, &sCols); err != nil {
		sol.Status = ilp.Infeasible
		sol.Error = errors.Wrap(err, "no MIP solution").Error()
	} else {
		sol.Status = ilp.Optimal
		byName := make(map[string]float64, len(sCols))
		for _, c := range sCols {
			byName[c.Name] = c.Value
		}
		for _, v := range p.Variables {
			val, ok := byName[v.ID]
			if !ok {
				// Presolve can eliminate fixed columns from the reported
				// solution; they still hold their fixed value.
				if v.Bound.IsFixed() {
					sol.Solution[v.ID] = v.Bound.Lower()
				} else {
					sol.Solution[v.ID] = 0
				}
				continue
			}
			sol.Solution[v.ID] = int(math.Round(val))
		}
		sol.Objective = obj.Value(sol.Solution)
	}

	if err := gpx.CloseCplex(); err != nil {
		return ilp.Solution{}, &solver.EngineError{Backend: b.Name(), Op: "CloseCplex", Msg: err.Error()}
	}
	return sol, nil
}
