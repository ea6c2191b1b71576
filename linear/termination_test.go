package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
	"github.com/YuminosukeSato/gdeval/pkg/log"
)

func TestTerminationPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy Termination
		step   Step
		want   bool
	}{
		{"plateau equal", ExactPlateau{}, Step{PreviousCost: 1.25, CurrentCost: 1.25}, true},
		{"plateau tiny change", ExactPlateau{}, Step{PreviousCost: 1.25, CurrentCost: 1.2500000000000002}, false},
		{"plateau first iteration zero cost", ExactPlateau{}, Step{Iteration: 0, PreviousCost: 0, CurrentCost: 0}, true},
		{"tolerance inside", Tolerance{Epsilon: 1e-6}, Step{PreviousCost: 1, CurrentCost: 1 + 5e-7}, true},
		{"tolerance outside", Tolerance{Epsilon: 1e-6}, Step{PreviousCost: 1, CurrentCost: 1.1}, false},
		{"tolerance cost rising", Tolerance{Epsilon: 1e-6}, Step{PreviousCost: 1, CurrentCost: 1 - 5e-7}, true},
		{"cap not reached", MaxIterations{Limit: 5}, Step{Iteration: 2, PreviousCost: 2, CurrentCost: 1}, false},
		{"cap inner stops first", MaxIterations{Limit: 5, Inner: ExactPlateau{}}, Step{Iteration: 4, PreviousCost: 1, CurrentCost: 1}, true},
		{"zero limit is uncapped", MaxIterations{Limit: 0}, Step{Iteration: 0, PreviousCost: 2, CurrentCost: 1}, false},
		{"negative limit is uncapped", MaxIterations{Limit: -3}, Step{Iteration: 50, PreviousCost: 2, CurrentCost: 1}, false},
		{"zero limit defers to inner", MaxIterations{Limit: 0, Inner: Tolerance{Epsilon: 0.5}}, Step{Iteration: 0, PreviousCost: 1, CurrentCost: 1.2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done, err := tt.policy.Done(tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, done)
		})
	}
}

func TestMaxIterationsTimeout(t *testing.T) {
	var warnings []error
	errors.SetZerologWarnFunc(func(w error) { warnings = append(warnings, w) })
	defer log.RouteWarnings()

	policy := MaxIterations{Limit: 3, Inner: Tolerance{Epsilon: 1e-9}}
	done, err := policy.Done(Step{Iteration: 2, PreviousCost: 4, CurrentCost: 3})
	assert.True(t, done)

	var te *errors.ConvergenceTimeoutError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 3, te.Iterations)
	assert.Equal(t, 3.0, te.LastCost)

	require.Len(t, warnings, 1)
	var cw *errors.ConvergenceWarning
	require.True(t, errors.As(warnings[0], &cw))
	assert.Equal(t, modelName, cw.Algorithm)
}

func TestTerminationString(t *testing.T) {
	assert.Equal(t, "exact_plateau", ExactPlateau{}.String())
	assert.Equal(t, "tolerance(1e-09)", Tolerance{Epsilon: 1e-9}.String())
	assert.Equal(t, "exact_plateau,max_iterations(10)", MaxIterations{Limit: 10}.String())

	gd := NewGradientDescent(WithMaxIterations(10), WithTermination(Tolerance{Epsilon: 0.5}), WithLogger(quietLogger()))
	assert.Equal(t, "tolerance(0.5),max_iterations(10)", gd.Termination().String())
}
