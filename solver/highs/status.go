package highs

// ModelStatus represents the status of the model after solving.
type ModelStatus int

const (
	ModelStatusNotSet ModelStatus = iota
	ModelStatusLoadError
	ModelStatusModelError
	ModelStatusPresolveError
	ModelStatusSolveError
	ModelStatusPostsolveError
	ModelStatusModelEmpty
	ModelStatusOptimal
	ModelStatusInfeasible
	ModelStatusUnboundedOrInfeasible
	ModelStatusUnbounded
	ModelStatusObjectiveBound
	ModelStatusObjectiveTarget
	ModelStatusTimeLimit
	ModelStatusIterationLimit
	ModelStatusUnknown
)

// String returns a human-readable representation of the model status.
func (ms ModelStatus) String() string {
	switch ms {
	case ModelStatusNotSet:
		return "NotSet"
	case ModelStatusLoadError:
		return "LoadError"
	case ModelStatusModelError:
		return "ModelError"
	case ModelStatusPresolveError:
		return "PresolveError"
	case ModelStatusSolveError:
		return "SolveError"
	case ModelStatusPostsolveError:
		return "PostsolveError"
	case ModelStatusModelEmpty:
		return "ModelEmpty"
	case ModelStatusOptimal:
		return "Optimal"
	case ModelStatusInfeasible:
		return "Infeasible"
	case ModelStatusUnboundedOrInfeasible:
		return "UnboundedOrInfeasible"
	case ModelStatusUnbounded:
		return "Unbounded"
	case ModelStatusObjectiveBound:
		return "ObjectiveBound"
	case ModelStatusObjectiveTarget:
		return "ObjectiveTarget"
	case ModelStatusTimeLimit:
		return "TimeLimit"
	case ModelStatusIterationLimit:
		return "IterationLimit"
	default:
		return "Unknown"
	}
}

// HasSolution reports whether column values are meaningful for this status.
func (ms ModelStatus) HasSolution() bool {
	switch ms {
	case ModelStatusOptimal, ModelStatusObjectiveBound, ModelStatusObjectiveTarget,
		ModelStatusTimeLimit, ModelStatusIterationLimit:
		return true
	default:
		return false
	}
}

// Solution holds the result of a solve: the model status, the primal
// column values and the engine-reported objective.
type Solution struct {
	Status    ModelStatus
	ColValues []float64
	Objective float64
}
