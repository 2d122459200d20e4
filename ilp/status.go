package ilp

// Status is the canonical solve outcome shared by all backends. The ordinal
// values are part of the wire contract and must not be renumbered.
type Status int

const (
	// Undefined indicates the solution is undefined.
	Undefined Status = 1
	// Feasible indicates a feasible but not provably optimal solution.
	Feasible Status = 2
	// Infeasible indicates the problem has no feasible solution.
	Infeasible Status = 3
	// NoFeasible indicates no feasible solution exists (dual information).
	NoFeasible Status = 4
	// Optimal indicates an optimal solution was found.
	Optimal Status = 5
	// Unbounded indicates the problem is unbounded.
	Unbounded Status = 6
	// SimplexFailed indicates the simplex phase failed.
	SimplexFailed Status = 7
	// MIPFailed indicates the integer optimizer failed.
	MIPFailed Status = 8
	// EmptySpace indicates the constraint matrix has no nonzero entries, so
	// no solve was attempted.
	EmptySpace Status = 9
)

// String returns the status name for diagnostics. The wire form is the
// integer ordinal, not this name.
func (s Status) String() string {
	switch s {
	case Undefined:
		return "Undefined"
	case Feasible:
		return "Feasible"
	case Infeasible:
		return "Infeasible"
	case NoFeasible:
		return "NoFeasible"
	case Optimal:
		return "Optimal"
	case Unbounded:
		return "Unbounded"
	case SimplexFailed:
		return "SimplexFailed"
	case MIPFailed:
		return "MIPFailed"
	case EmptySpace:
		return "EmptySpace"
	default:
		return "Unknown"
	}
}

// Solution is the result of solving one objective. It is a pure value,
// produced in input order, one per objective.
type Solution struct {
	Status    Status         `json:"status"`
	Objective int            `json:"objective"`
	Solution  map[string]int `json:"solution"`
	Error     string         `json:"error,omitempty"`
}

// IsOptimal reports whether the solution is optimal.
func (s *Solution) IsOptimal() bool { return s.Status == Optimal }

// HasAssignment reports whether the solution carries variable values.
func (s *Solution) HasAssignment() bool {
	return s.Status == Optimal || s.Status == Feasible
}
