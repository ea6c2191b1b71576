// Package log defines standard attribute keys for gdeval operations.
//
// These keys follow a hierarchical naming convention (e.g. "ml.operation",
// "data.samples") so records emitted by the fitter and the metrics engine can
// be filtered consistently.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the estimator emitting the record.
	// Examples: "GradientDescent", "GDRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "evaluate"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "metrics", "viz"
	ComponentKey = "ml.component"
)

// Data Shape
const (
	// SamplesKey indicates the number of samples in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"
)

// Training progress and results
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// IterationKey records the current iteration number of an iterative fit.
	IterationKey = "training.iteration"

	// CostKey records the sum-of-squared-errors cost of the current parameters.
	CostKey = "metrics.cost"

	// InterceptKey and SlopeKey record the regression parameters.
	InterceptKey = "params.intercept"
	SlopeKey     = "params.slope"

	// AccuracyKey records accuracy reported by the confusion-matrix engine.
	AccuracyKey = "metrics.accuracy"

	// R2ScoreKey records the coefficient of determination of a fitted line.
	R2ScoreKey = "metrics.r2_score"
)

// Hyperparameters
const (
	// LearningRateKey records the learning rate of the gradient step.
	LearningRateKey = "hyperparams.learning_rate"

	// TerminationKey records the name of the stopping policy in use.
	TerminationKey = "hyperparams.termination"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// SuggestionKey provides a hint for resolving the issue.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationScore    = "score"
	OperationEvaluate = "evaluate"

	ErrorInvalidInput  = "INVALID_INPUT"
	ErrorConvergence   = "CONVERGENCE_FAILURE"
	ErrorDivergence    = "NUMERICAL_INSTABILITY"
	ErrorObserverPanic = "OBSERVER_PANIC"
)
