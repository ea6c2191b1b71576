package linear

import (
	"math"
	"math/rand"
	"time"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
	"github.com/YuminosukeSato/gdeval/pkg/log"
)

const modelName = "GradientDescent"

// GradientDescent はバッチ勾配降下法で単回帰直線を推定する
type GradientDescent struct {
	learningRate float64
	initial      *Params
	randomState  int64 // -1 when unseeded
	rand         *rand.Rand
	termination  Termination
	maxIter      int
	observers    Observers
	observeEvery int
	logger       log.Logger
}

// Result is the outcome of a successful Fit.
type Result struct {
	Params Params
	// Iterations is the number of loop iterations executed.
	Iterations int
	// Cost is the cost that satisfied the termination policy. It was computed
	// with the parameters before the final update.
	Cost float64
}

// NewGradientDescent creates a fitter. Without options it uses a learning
// rate of 0.005, random initial parameters and the ExactPlateau policy.
func NewGradientDescent(opts ...Option) *GradientDescent {
	gd := &GradientDescent{
		learningRate: DefaultLearningRate,
		randomState:  -1,
		termination:  ExactPlateau{},
		observeEvery: DefaultObserveEvery,
	}
	for _, opt := range opts {
		opt(gd)
	}

	if gd.rand == nil {
		gd.rand = rand.New(rand.NewSource(rand.Int63()))
	}
	if gd.termination == nil {
		gd.termination = ExactPlateau{}
	}
	if gd.logger == nil {
		gd.logger = log.GetLoggerWithName("linear").With(log.ModelNameKey, modelName)
	}
	return gd
}

// LearningRate returns the configured step size.
func (gd *GradientDescent) LearningRate() float64 {
	return gd.learningRate
}

// Termination returns the effective stopping policy, including the cap.
func (gd *GradientDescent) Termination() Termination {
	if gd.maxIter > 0 {
		return MaxIterations{Limit: gd.maxIter, Inner: gd.termination}
	}
	return gd.termination
}

func (gd *GradientDescent) validate() error {
	if gd.learningRate <= 0 || math.IsNaN(gd.learningRate) || math.IsInf(gd.learningRate, 0) {
		return errors.NewValidationError("learning_rate", "must be positive and finite", gd.learningRate)
	}
	if gd.observeEvery <= 0 {
		return errors.NewValidationError("observe_every", "must be positive", gd.observeEvery)
	}
	if gd.maxIter < 0 {
		return errors.NewValidationError("max_iterations", "must not be negative", gd.maxIter)
	}
	return nil
}

func (gd *GradientDescent) initialParams() Params {
	if gd.initial != nil {
		return *gd.initial
	}
	return Params{Intercept: gd.rand.Float64(), Slope: gd.rand.Float64()}
}

// Fit runs gradient descent on s until the termination policy stops it.
//
// Each iteration computes the cost of the current parameters, notifies the
// observers on the configured cadence, applies one gradient step and then
// consults the policy. The returned parameters are the ones produced by the
// final update. A NaN or Inf cost or parameter aborts with a
// NumericalInstabilityError.
func (gd *GradientDescent) Fit(s *SampleSet) (Result, error) {
	if s == nil || s.Len() == 0 {
		return Result{}, errors.NewValidationError("samples", "sample set must not be empty", 0)
	}
	if err := gd.validate(); err != nil {
		gd.logger.Error("invalid fitter configuration", err,
			log.ErrorCodeKey, log.ErrorInvalidInput,
		)
		return Result{}, err
	}

	term := gd.Termination()
	p := gd.initialParams()
	start := time.Now()

	gd.logger.Debug("fit started",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, s.Len(),
		log.LearningRateKey, gd.learningRate,
		log.TerminationKey, term.String(),
		log.RandomSeedKey, gd.randomState,
		log.InterceptKey, p.Intercept,
		log.SlopeKey, p.Slope,
	)

	previousCost := 0.0
	for i := 0; ; i++ {
		cost := Cost(p, s)
		if err := errors.CheckScalar("cost", cost, i); err != nil {
			gd.logger.Error("fit diverged", err,
				log.IterationKey, i,
				log.LearningRateKey, gd.learningRate,
				log.ErrorCodeKey, log.ErrorDivergence,
				log.SuggestionKey, "lower the learning rate",
			)
			return Result{Params: p, Iterations: i + 1, Cost: cost}, err
		}

		if len(gd.observers) > 0 && i%gd.observeEvery == 0 {
			gd.notify(Snapshot{Iteration: i, Cost: cost, Params: p})
		}

		p = UpdateParameters(p, s, gd.learningRate)
		if err := errors.CheckNumericalStability("gradient_update", []float64{p.Intercept, p.Slope}, i); err != nil {
			gd.logger.Error("fit diverged", err,
				log.IterationKey, i,
				log.LearningRateKey, gd.learningRate,
				log.ErrorCodeKey, log.ErrorDivergence,
				log.SuggestionKey, "lower the learning rate",
			)
			return Result{Params: p, Iterations: i + 1, Cost: cost}, err
		}

		done, err := term.Done(Step{Iteration: i, PreviousCost: previousCost, CurrentCost: cost, Params: p})
		res := Result{Params: p, Iterations: i + 1, Cost: cost}
		if err != nil {
			gd.logger.Warn("fit stopped without convergence",
				log.IterationKey, res.Iterations,
				log.CostKey, cost,
				log.ErrorCodeKey, log.ErrorConvergence,
			)
			return res, err
		}
		if done {
			gd.logger.Debug("fit finished",
				log.OperationKey, log.OperationFit,
				log.IterationKey, res.Iterations,
				log.CostKey, cost,
				log.InterceptKey, p.Intercept,
				log.SlopeKey, p.Slope,
				log.DurationMsKey, time.Since(start).Milliseconds(),
			)
			return res, nil
		}
		previousCost = cost
	}
}

// notify calls each observer, recovering from panics so that a faulty
// observer can neither change the fit nor starve the observers after it.
func (gd *GradientDescent) notify(snap Snapshot) {
	for i, obs := range gd.observers {
		if err := observeSafely(i, obs, snap); err != nil {
			gd.logger.Warn("observer panicked",
				log.IterationKey, snap.Iteration,
				log.ErrorCodeKey, log.ErrorObserverPanic,
				"observer", i,
				"panic", err.Error(),
			)
		}
	}
}
