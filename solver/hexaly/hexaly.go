// Package hexaly adapts the Hexaly local-search engine through a small C shim
// over its C++ SDK. Hexaly has no matrix interface, so constraints are built
// as expression trees of sum, product and scalar nodes.
package hexaly

/*
#cgo CXXFLAGS: -std=c++11
#cgo LDFLAGS: -lhexaly
#include "wrapper.h"
*/
import "C"
import (
	"errors"
	"runtime"
)

// State is the optimizer state after solve.
type State int

const (
	StateStopped State = 0
	StateRunning State = 1
	StatePaused  State = 2
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// SolutionStatus is the quality the engine assigns to its incumbent solution.
type SolutionStatus int

const (
	SolutionNone         SolutionStatus = 0
	SolutionInconsistent SolutionStatus = 1
	SolutionInfeasible   SolutionStatus = 2
	SolutionFeasible     SolutionStatus = 3
	SolutionOptimal      SolutionStatus = 4
)

// String returns the solution status name for diagnostics.
func (s SolutionStatus) String() string {
	switch s {
	case SolutionNone:
		return "NoSolution"
	case SolutionInconsistent:
		return "Inconsistent"
	case SolutionInfeasible:
		return "Infeasible"
	case SolutionFeasible:
		return "Feasible"
	case SolutionOptimal:
		return "Optimal"
	default:
		return "Unknown"
	}
}

// Expr is an opaque handle to one node of the engine's expression DAG. All
// expression handles are owned by the Optimizer they were created from and
// become invalid when it is closed.
type Expr struct {
	ptr C.HxwExpr
}

func (e Expr) valid() bool { return e.ptr != nil }

// Optimizer wraps one native Hexaly instance together with its model and
// parameter handles. Always call Close when done:
//
//	opt, _ := NewOptimizer()
//	defer opt.Close()
type Optimizer struct {
	ptr   C.HxwOptimizer
	model C.HxwModel
	param C.HxwParam
	sol   C.HxwSolution // fetched once after Solve, freed in Close
}

// NewOptimizer creates a native Hexaly instance.
func NewOptimizer() (*Optimizer, error) {
	ptr := C.hxw_create_optimizer()
	if ptr == nil {
		return nil, errors.New("hexaly: failed to create optimizer")
	}
	o := &Optimizer{ptr: ptr}
	o.model = C.hxw_get_model(ptr)
	o.param = C.hxw_get_param(ptr)
	if o.model == nil || o.param == nil {
		o.Close()
		return nil, errors.New("hexaly: failed to acquire model handles")
	}
	runtime.SetFinalizer(o, (*Optimizer).Close)
	return o, nil
}

// Close releases the native instance. Safe to call multiple times.
func (o *Optimizer) Close() {
	if o.ptr != nil {
		C.hxw_delete_solution(o.sol)
		C.hxw_delete_param(o.param)
		C.hxw_delete_model(o.model)
		C.hxw_delete_optimizer(o.ptr)
		o.ptr = nil
		o.model = nil
		o.param = nil
		o.sol = nil
	}
}

// SetVerbosity sets console verbosity; 0 silences the engine.
func (o *Optimizer) SetVerbosity(level int) {
	C.hxw_param_set_verbosity(o.param, C.int32_t(level))
}

// SetTimeLimit bounds the solve to the given number of seconds.
func (o *Optimizer) SetTimeLimit(seconds int) {
	C.hxw_param_set_time_limit(o.param, C.int32_t(seconds))
}

// IntVar declares an integer decision variable with inclusive bounds.
func (o *Optimizer) IntVar(lower, upper int) (Expr, error) {
	return o.wrap(C.hxw_model_int(o.model, C.int64_t(lower), C.int64_t(upper)), "intVar")
}

// Sum creates an empty sum node; operands attach with AddOperand.
func (o *Optimizer) Sum() (Expr, error) {
	return o.wrap(C.hxw_model_sum(o.model), "sum")
}

// Prod creates an empty product node; operands attach with AddOperand.
func (o *Optimizer) Prod() (Expr, error) {
	return o.wrap(C.hxw_model_prod(o.model), "prod")
}

// Scalar creates a constant node.
func (o *Optimizer) Scalar(value int) (Expr, error) {
	return o.wrap(C.hxw_model_scalar(o.model, C.int64_t(value)), "scalar")
}

// AddOperand appends an operand to a sum or product node.
func (o *Optimizer) AddOperand(expr, operand Expr) {
	C.hxw_expr_add_operand(expr.ptr, operand.ptr)
}

// Leq creates the relational node left <= right.
func (o *Optimizer) Leq(left, right Expr) (Expr, error) {
	return o.wrap(C.hxw_expr_leq(o.model, left.ptr, right.ptr), "leq")
}

// Geq creates the relational node left >= right.
func (o *Optimizer) Geq(left, right Expr) (Expr, error) {
	return o.wrap(C.hxw_expr_geq(o.model, left.ptr, right.ptr), "geq")
}

// Constrain registers a relational expression as a model constraint.
func (o *Optimizer) Constrain(expr Expr) {
	C.hxw_model_add_constraint(o.model, expr.ptr)
}

// Minimize sets the objective to minimize the expression.
func (o *Optimizer) Minimize(expr Expr) {
	C.hxw_model_minimize(o.model, expr.ptr)
}

// Maximize sets the objective to maximize the expression.
func (o *Optimizer) Maximize(expr Expr) {
	C.hxw_model_maximize(o.model, expr.ptr)
}

// CloseModel seals the model. Must be called after all variables, constraints
// and the objective are declared and before Solve.
func (o *Optimizer) CloseModel() {
	C.hxw_model_close(o.model)
}

// Solve runs the engine until its stopping criteria are met.
func (o *Optimizer) Solve() {
	C.hxw_solve(o.ptr)
}

// State reports the optimizer state after Solve.
func (o *Optimizer) State() State {
	return State(C.hxw_get_state(o.ptr))
}

// SolutionStatus reports the quality of the incumbent solution.
func (o *Optimizer) SolutionStatus() SolutionStatus {
	return SolutionStatus(C.hxw_solution_get_status(o.solution()))
}

// IntValue reads the incumbent value of a declared integer variable.
func (o *Optimizer) IntValue(expr Expr) int {
	return int(C.hxw_solution_get_int_value(o.solution(), expr.ptr))
}

// solution returns the cached incumbent handle, fetching it on first use so
// repeated status and value reads share one native wrapper.
func (o *Optimizer) solution() C.HxwSolution {
	if o.sol == nil {
		o.sol = C.hxw_get_solution(o.ptr)
	}
	return o.sol
}

func (o *Optimizer) wrap(ptr C.HxwExpr, op string) (Expr, error) {
	if ptr == nil {
		return Expr{}, errors.New("hexaly: " + op + " failed")
	}
	return Expr{ptr: ptr}, nil
}
