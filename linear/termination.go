package linear

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

// Step is the loop state handed to a Termination after each parameter update.
// Params are the values just produced by that iteration's update.
type Step struct {
	Iteration    int
	PreviousCost float64
	CurrentCost  float64
	Params       Params
}

// Termination decides when the gradient-descent loop stops.
// Done returns true to stop with the current parameters, or an error to
// abort the fit.
type Termination interface {
	Done(step Step) (bool, error)
	String() string
}

// ExactPlateau stops when the cost is bit-for-bit equal to the previous
// iteration's cost. The previous cost starts at 0, so a perfect fit at the
// first iteration also stops.
type ExactPlateau struct{}

func (ExactPlateau) Done(step Step) (bool, error) {
	return step.CurrentCost == step.PreviousCost, nil
}

func (ExactPlateau) String() string { return "exact_plateau" }

// Tolerance stops when the cost changes by at most Epsilon.
type Tolerance struct {
	Epsilon float64
}

func (t Tolerance) Done(step Step) (bool, error) {
	return math.Abs(step.CurrentCost-step.PreviousCost) <= t.Epsilon, nil
}

func (t Tolerance) String() string { return fmt.Sprintf("tolerance(%g)", t.Epsilon) }

// MaxIterations wraps another policy with an iteration cap. Reaching the cap
// before Inner stops is reported as a ConvergenceTimeoutError and emitted as a
// ConvergenceWarning. A Limit of zero or less means no cap.
type MaxIterations struct {
	Limit int
	Inner Termination
}

func (m MaxIterations) Done(step Step) (bool, error) {
	inner := m.Inner
	if inner == nil {
		inner = ExactPlateau{}
	}

	done, err := inner.Done(step)
	if err != nil || done {
		return done, err
	}

	// Iteration is 0-based.
	if m.Limit > 0 && step.Iteration+1 >= m.Limit {
		errors.Warn(errors.NewConvergenceWarning(modelName, m.Limit,
			fmt.Sprintf("%s not reached, last cost %.6g", inner, step.CurrentCost)))
		return true, errors.NewConvergenceTimeoutError(modelName, m.Limit, step.CurrentCost)
	}
	return false, nil
}

func (m MaxIterations) String() string {
	inner := m.Inner
	if inner == nil {
		inner = ExactPlateau{}
	}
	return fmt.Sprintf("%s,max_iterations(%d)", inner, m.Limit)
}
