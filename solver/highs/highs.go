// Package highs adapts the HiGHS engine to the backend-neutral solving
// contract through a thin cgo wrapper over the HiGHS C API.
//
// The wrapper exposes exactly what the adapter needs: a native handle with
// scope-bound release, option setters, row/column construction and a Run that
// reports status, column values and the objective. Quadratic terms, duals and
// file I/O are out of scope here.
package highs

/*
#cgo LDFLAGS: -lhighs
#include <stdlib.h>
#include "interfaces/highs_c_api.h"
*/
import "C"
import (
	"fmt"
	"runtime"
	"unsafe"
)

// Status represents the result status of a HiGHS C API call.
type Status int

const (
	// StatusError indicates the operation failed with an error.
	StatusError Status = -1
	// StatusOK indicates the operation succeeded.
	StatusOK Status = 0
	// StatusWarning indicates the operation succeeded with warnings.
	StatusWarning Status = 1
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusError:
		return "Error"
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "Warning"
	default:
		return "Unknown"
	}
}

// Error represents a HiGHS error with context about which operation failed.
type Error struct {
	Op     string // Operation that failed (e.g., "Run", "AddCol")
	Status Status // HiGHS status code
	Msg    string // Additional context
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("highs: %s failed: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("highs: %s failed with status %s", e.Op, e.Status)
}

// newError creates a new Error if status is not OK.
// Returns nil if status is OK or Warning.
func newError(op string, status Status) error {
	if status == StatusOK || status == StatusWarning {
		return nil
	}
	return &Error{Op: op, Status: status}
}

// newErrorMsg creates a new Error with an additional message.
func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Status: StatusError, Msg: msg}
}

// Solver wraps one native HiGHS instance. Always call Close when done:
//
//	s, _ := NewSolver()
//	defer s.Close()
type Solver struct {
	ptr unsafe.Pointer
}

// NewSolver creates a new HiGHS instance.
func NewSolver() (*Solver, error) {
	ptr := C.Highs_create()
	if ptr == nil {
		return nil, newErrorMsg("NewSolver", "failed to create HiGHS instance")
	}
	s := &Solver{ptr: ptr}
	runtime.SetFinalizer(s, (*Solver).Close)
	return s, nil
}

// Close releases the native instance. Safe to call multiple times.
func (s *Solver) Close() {
	if s.ptr != nil {
		C.Highs_destroy(s.ptr)
		s.ptr = nil
	}
}

// Infinity returns the value HiGHS uses to represent infinity.
func (s *Solver) Infinity() float64 {
	return float64(C.Highs_getInfinity(s.ptr))
}

// SetBoolOption sets a boolean option.
func (s *Solver) SetBoolOption(name string, value bool) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var cVal C.HighsInt
	if value {
		cVal = 1
	}
	status := Status(C.Highs_setBoolOptionValue(s.ptr, cName, cVal))
	return newError("SetBoolOption", status)
}

// SetStringOption sets a string option.
func (s *Solver) SetStringOption(name, value string) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cVal := C.CString(value)
	defer C.free(unsafe.Pointer(cVal))

	status := Status(C.Highs_setStringOptionValue(s.ptr, cName, cVal))
	return newError("SetStringOption", status)
}

// SetMaximize sets whether to maximize (true) or minimize (false).
func (s *Solver) SetMaximize(maximize bool) error {
	sense := C.kHighsObjSenseMinimize
	if maximize {
		sense = C.kHighsObjSenseMaximize
	}
	status := Status(C.Highs_changeObjectiveSense(s.ptr, C.HighsInt(sense)))
	return newError("SetMaximize", status)
}

// AddRow adds one constraint with the given bounds and no coefficients yet;
// columns attach their entries when they are created.
func (s *Solver) AddRow(lower, upper float64) error {
	status := Status(C.Highs_addRow(s.ptr,
		C.double(lower), C.double(upper), 0, nil, nil))
	return newError("AddRow", status)
}

// AddCol adds one variable with its cost, bounds and sparse column entries
// referencing previously added rows.
func (s *Solver) AddCol(cost, lower, upper float64, index []int, value []float64) error {
	if len(index) != len(value) {
		return newErrorMsg("AddCol", "index and value must have same length")
	}

	var pIndex *C.HighsInt
	var pValue *C.double
	if len(index) > 0 {
		cIndex := make([]C.HighsInt, len(index))
		for i, v := range index {
			cIndex[i] = C.HighsInt(v)
		}
		pIndex = &cIndex[0]
		pValue = (*C.double)(&value[0])
	}

	status := Status(C.Highs_addCol(s.ptr,
		C.double(cost), C.double(lower), C.double(upper),
		C.HighsInt(len(index)), pIndex, pValue))
	return newError("AddCol", status)
}

// SetColCosts rewrites the objective coefficients for all columns.
func (s *Solver) SetColCosts(costs []float64) error {
	if len(costs) == 0 {
		return nil
	}
	status := Status(C.Highs_changeColsCostByRange(s.ptr,
		0, C.HighsInt(len(costs)-1),
		(*C.double)(&costs[0])))
	return newError("SetColCosts", status)
}

// SetAllColsInteger marks every column as an integer variable.
func (s *Solver) SetAllColsInteger(numCol int) error {
	if numCol == 0 {
		return nil
	}
	integrality := make([]C.HighsInt, numCol)
	for i := range integrality {
		integrality[i] = C.kHighsVarTypeInteger
	}
	status := Status(C.Highs_changeColsIntegralityByRange(s.ptr,
		0, C.HighsInt(numCol-1),
		&integrality[0]))
	return newError("SetAllColsInteger", status)
}

// Run solves the current model and returns the solution.
func (s *Solver) Run() (*Solution, error) {
	status := Status(C.Highs_run(s.ptr))
	if status == StatusError {
		return nil, newError("Run", status)
	}

	modelStatus := modelStatusFromC(C.Highs_getModelStatus(s.ptr))
	numCol := int(C.Highs_getNumCol(s.ptr))

	colValue := make([]float64, numCol)
	var pColValue *C.double
	if numCol > 0 {
		pColValue = (*C.double)(&colValue[0])
	}
	C.Highs_getSolution(s.ptr, pColValue, nil, nil, nil)

	return &Solution{
		Status:    modelStatus,
		ColValues: colValue,
		Objective: float64(C.Highs_getObjectiveValue(s.ptr)),
	}, nil
}

func modelStatusFromC(status C.HighsInt) ModelStatus {
	switch status {
	case C.kHighsModelStatusNotset:
		return ModelStatusNotSet
	case C.kHighsModelStatusLoadError:
		return ModelStatusLoadError
	case C.kHighsModelStatusModelError:
		return ModelStatusModelError
	case C.kHighsModelStatusPresolveError:
		return ModelStatusPresolveError
	case C.kHighsModelStatusSolveError:
		return ModelStatusSolveError
	case C.kHighsModelStatusPostsolveError:
		return ModelStatusPostsolveError
	case C.kHighsModelStatusModelEmpty:
		return ModelStatusModelEmpty
	case C.kHighsModelStatusOptimal:
		return ModelStatusOptimal
	case C.kHighsModelStatusInfeasible:
		return ModelStatusInfeasible
	case C.kHighsModelStatusUnboundedOrInfeasible:
		return ModelStatusUnboundedOrInfeasible
	case C.kHighsModelStatusUnbounded:
		return ModelStatusUnbounded
	case C.kHighsModelStatusObjectiveBound:
		return ModelStatusObjectiveBound
	case C.kHighsModelStatusObjectiveTarget:
		return ModelStatusObjectiveTarget
	case C.kHighsModelStatusTimeLimit:
		return ModelStatusTimeLimit
	case C.kHighsModelStatusIterationLimit:
		return ModelStatusIterationLimit
	default:
		return ModelStatusUnknown
	}
}
