package linear

import (
	"math/rand"

	"github.com/YuminosukeSato/gdeval/pkg/log"
)

const (
	// DefaultLearningRate is the step size used when none is configured.
	DefaultLearningRate = 0.005
	// DefaultObserveEvery is the observer cadence in iterations.
	DefaultObserveEvery = 100
)

// Option is a function that configures GradientDescent
type Option func(*GradientDescent)

// WithLearningRate sets the gradient step size. It must be positive.
func WithLearningRate(lr float64) Option {
	return func(gd *GradientDescent) {
		gd.learningRate = lr
	}
}

// WithInitialParams starts the fit from p instead of random values.
func WithInitialParams(p Params) Option {
	return func(gd *GradientDescent) {
		gd.initial = &p
	}
}

// WithRandomState seeds the source used for random initialization.
func WithRandomState(seed int64) Option {
	return func(gd *GradientDescent) {
		gd.randomState = seed
		gd.rand = rand.New(rand.NewSource(seed))
	}
}

// WithRandSource injects the random source used for initialization.
func WithRandSource(src rand.Source) Option {
	return func(gd *GradientDescent) {
		gd.rand = rand.New(src)
	}
}

// WithTermination replaces the default ExactPlateau policy.
func WithTermination(t Termination) Option {
	return func(gd *GradientDescent) {
		gd.termination = t
	}
}

// WithMaxIterations caps the loop; 0 disables the cap.
func WithMaxIterations(n int) Option {
	return func(gd *GradientDescent) {
		gd.maxIter = n
	}
}

// WithObserver registers an observer notified every ObserveEvery iterations.
func WithObserver(o Observer) Option {
	return func(gd *GradientDescent) {
		gd.observers = append(gd.observers, o)
	}
}

// WithObserveEvery sets the observer cadence.
func WithObserveEvery(n int) Option {
	return func(gd *GradientDescent) {
		gd.observeEvery = n
	}
}

// WithLogger sets the logger used for fit diagnostics.
func WithLogger(l log.Logger) Option {
	return func(gd *GradientDescent) {
		gd.logger = l
	}
}
