package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

// ratioPlaces is the number of decimal places every ratio is rounded to.
const ratioPlaces = 3

// percent converts a raw ratio into a rounded percentage.
func percent(numerator, denominator float64) float64 {
	return errors.RoundTo(errors.SafeDivide(numerator, denominator)*100, ratioPlaces)
}

// fraction rounds a raw ratio without scaling it.
func fraction(numerator, denominator float64) float64 {
	return errors.RoundTo(errors.SafeDivide(numerator, denominator), ratioPlaces)
}

// RecallRate returns tp / (tp+fn) as a percentage.
func RecallRate(tp, fn float64) float64 {
	return percent(tp, tp+fn)
}

// PrecisionRate returns tp / (tp+fp) as a percentage.
func PrecisionRate(tp, fp float64) float64 {
	return percent(tp, tp+fp)
}

// FalseDiscoveryRate returns fp / (tp+fp) as a percentage.
func FalseDiscoveryRate(tp, fp float64) float64 {
	return percent(fp, tp+fp)
}

// FalsePositiveRate returns fp / (fp+tn) as a percentage.
func FalsePositiveRate(tn, fp float64) float64 {
	return percent(fp, fp+tn)
}

// FalseNegativeRate returns fn / (tp+fn) as a percentage.
func FalseNegativeRate(tp, fn float64) float64 {
	return percent(fn, tp+fn)
}

// TrueDiscoveryRate returns fn / (tn+fn) as a percentage.
// Note that this is the share of negative predictions that were wrong.
func TrueDiscoveryRate(tn, fn float64) float64 {
	return percent(fn, tn+fn)
}

// NegativePredictiveRate returns tn / (tn+fn) as a percentage.
func NegativePredictiveRate(tn, fn float64) float64 {
	return percent(tn, tn+fn)
}

// Specificity returns tn / (tn+fp) as a percentage.
func Specificity(tn, fp float64) float64 {
	return percent(tn, tn+fp)
}

// Accuracy returns (tp+tn) / (tp+tn+fp+fn) as a percentage.
func Accuracy(tp, tn, fp, fn float64) float64 {
	return percent(tp+tn, tp+tn+fp+fn)
}

// F1Score returns 2tp / (2tp+fp+fn) as a fraction in [0, 1].
func F1Score(tp, fp, fn float64) float64 {
	return fraction(2*tp, 2*tp+fp+fn)
}

// MatthewsCorrelation returns the Matthews correlation coefficient as a
// fraction in [-1, 1]. A zero marginal yields 0.
func MatthewsCorrelation(tp, tn, fp, fn float64) float64 {
	numerator := tp*tn - fp*fn
	denominator := math.Sqrt((tp + fp) * (tp + fn) * (tn + fp) * (tn + fn))
	return fraction(numerator, denominator)
}

// ConfusionMatrix holds the four outcome counts of a binary classifier.
// Counts are float64 so that weighted or averaged counts are accepted.
type ConfusionMatrix struct {
	TruePositive  float64 `json:"tp"`
	TrueNegative  float64 `json:"tn"`
	FalsePositive float64 `json:"fp"`
	FalseNegative float64 `json:"fn"`
}

// NewConfusionMatrix validates the counts and returns a ConfusionMatrix.
// Every count must be finite and non-negative; an all-zero matrix is valid.
func NewConfusionMatrix(tp, tn, fp, fn float64) (ConfusionMatrix, error) {
	counts := []struct {
		name  string
		value float64
	}{
		{"tp", tp},
		{"tn", tn},
		{"fp", fp},
		{"fn", fn},
	}
	for _, c := range counts {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return ConfusionMatrix{}, errors.NewValidationError(c.name, "count must be finite", c.value)
		}
		if c.value < 0 {
			return ConfusionMatrix{}, errors.NewValidationError(c.name, "count must be non-negative", c.value)
		}
	}
	return ConfusionMatrix{TruePositive: tp, TrueNegative: tn, FalsePositive: fp, FalseNegative: fn}, nil
}

// ConfusionMatrixFromLabels counts outcomes from binary label vectors.
// A label of 1 is the positive class and 0 the negative class; any other
// value is rejected.
func ConfusionMatrixFromLabels(yTrue, yPred *mat.VecDense) (ConfusionMatrix, error) {
	n := yTrue.Len()
	if n == 0 {
		return ConfusionMatrix{}, errors.NewValueError("ConfusionMatrixFromLabels", "empty vector")
	}
	if yPred.Len() != n {
		return ConfusionMatrix{}, errors.NewDimensionError("ConfusionMatrixFromLabels", n, yPred.Len(), 0)
	}

	var cm ConfusionMatrix
	for i := 0; i < n; i++ {
		truth, pred := yTrue.AtVec(i), yPred.AtVec(i)
		if !isBinaryLabel(truth) {
			return ConfusionMatrix{}, errors.NewValidationError("yTrue", "label must be 0 or 1", truth)
		}
		if !isBinaryLabel(pred) {
			return ConfusionMatrix{}, errors.NewValidationError("yPred", "label must be 0 or 1", pred)
		}

		switch {
		case truth == 1 && pred == 1:
			cm.TruePositive++
		case truth == 0 && pred == 0:
			cm.TrueNegative++
		case truth == 0 && pred == 1:
			cm.FalsePositive++
		default:
			cm.FalseNegative++
		}
	}
	return cm, nil
}

func isBinaryLabel(v float64) bool {
	return v == 0 || v == 1
}

// Total returns the number of evaluated samples.
func (cm ConfusionMatrix) Total() float64 {
	return cm.TruePositive + cm.TrueNegative + cm.FalsePositive + cm.FalseNegative
}

// RecallRate returns the matrix's recall as a percentage.
func (cm ConfusionMatrix) RecallRate() float64 {
	return RecallRate(cm.TruePositive, cm.FalseNegative)
}

// PrecisionRate returns the matrix's precision as a percentage.
func (cm ConfusionMatrix) PrecisionRate() float64 {
	return PrecisionRate(cm.TruePositive, cm.FalsePositive)
}

// FalseDiscoveryRate returns fp/(tp+fp) as a percentage.
func (cm ConfusionMatrix) FalseDiscoveryRate() float64 {
	return FalseDiscoveryRate(cm.TruePositive, cm.FalsePositive)
}

// FalsePositiveRate returns fp/(tn+fp) as a percentage.
func (cm ConfusionMatrix) FalsePositiveRate() float64 {
	return FalsePositiveRate(cm.TrueNegative, cm.FalsePositive)
}

// FalseNegativeRate returns fn/(tp+fn) as a percentage.
func (cm ConfusionMatrix) FalseNegativeRate() float64 {
	return FalseNegativeRate(cm.TruePositive, cm.FalseNegative)
}

// TrueDiscoveryRate returns fn/(tn+fn) as a percentage.
func (cm ConfusionMatrix) TrueDiscoveryRate() float64 {
	return TrueDiscoveryRate(cm.TrueNegative, cm.FalseNegative)
}

// NegativePredictiveRate returns tn/(tn+fn) as a percentage.
func (cm ConfusionMatrix) NegativePredictiveRate() float64 {
	return NegativePredictiveRate(cm.TrueNegative, cm.FalseNegative)
}

// Specificity returns tn/(tn+fp) as a percentage.
func (cm ConfusionMatrix) Specificity() float64 {
	return Specificity(cm.TrueNegative, cm.FalsePositive)
}

// Accuracy returns the share of correct predictions as a percentage.
func (cm ConfusionMatrix) Accuracy() float64 {
	return Accuracy(cm.TruePositive, cm.TrueNegative, cm.FalsePositive, cm.FalseNegative)
}

// F1Score returns the harmonic mean of precision and recall as a fraction.
func (cm ConfusionMatrix) F1Score() float64 {
	return F1Score(cm.TruePositive, cm.FalsePositive, cm.FalseNegative)
}

// MatthewsCorrelation returns the matrix's MCC in [-1, 1].
func (cm ConfusionMatrix) MatthewsCorrelation() float64 {
	return MatthewsCorrelation(cm.TruePositive, cm.TrueNegative, cm.FalsePositive, cm.FalseNegative)
}
