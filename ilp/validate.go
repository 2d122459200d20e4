package ilp

import "fmt"

// InputError reports a client-caused problem with a solve request: a
// malformed polyhedron or an objective referencing an undeclared variable.
// Input errors are always raised before any native engine is invoked.
type InputError struct {
	Details string
}

func (e *InputError) Error() string { return e.Details }

// Errorf builds an InputError with a formatted detail message.
func Errorf(format string, args ...any) *InputError {
	return &InputError{Details: fmt.Sprintf(format, args...)}
}

// Validate checks the structural consistency of the polyhedron: parallel COO
// slices, shape agreement with the variable and right-hand-side counts,
// in-range coordinate indices and ordered variable bounds.
func (p *Polyhedron) Validate() error {
	a := &p.A
	if len(a.Rows) != len(a.Cols) || len(a.Rows) != len(a.Vals) {
		return Errorf("rows, cols and vals must have the same length, got (%d,%d,%d)",
			len(a.Rows), len(a.Cols), len(a.Vals))
	}
	if a.Shape.NCols != len(p.Variables) {
		return Errorf("the number of variables must equal the matrix column count, got (%d,%d)",
			len(p.Variables), a.Shape.NCols)
	}
	if a.Shape.NRows != len(p.B) {
		return Errorf("the matrix row count must equal the number of elements in b, got (%d,%d)",
			a.Shape.NRows, len(p.B))
	}
	for i := range a.Vals {
		if a.Rows[i] < 0 || a.Rows[i] >= a.Shape.NRows {
			return Errorf("matrix entry %d has row index %d outside [0,%d)", i, a.Rows[i], a.Shape.NRows)
		}
		if a.Cols[i] < 0 || a.Cols[i] >= a.Shape.NCols {
			return Errorf("matrix entry %d has column index %d outside [0,%d)", i, a.Cols[i], a.Shape.NCols)
		}
	}
	for _, v := range p.Variables {
		if v.Bound.Lower() > v.Bound.Upper() {
			return Errorf("variable %s has lower bound %d above upper bound %d",
				v.ID, v.Bound.Lower(), v.Bound.Upper())
		}
	}
	return nil
}

// ValidateObjectives rejects any objective that references a variable id not
// declared among variables. The error names the offending variable; this is a
// hard rejection, never a silent drop.
func ValidateObjectives(variables []Variable, objectives []Objective) error {
	ids := make(map[string]struct{}, len(variables))
	for _, v := range variables {
		ids[v.ID] = struct{}{}
	}
	for _, obj := range objectives {
		for id := range obj {
			if _, ok := ids[id]; !ok {
				return Errorf("objective contains missing variable %s", id)
			}
		}
	}
	return nil
}
