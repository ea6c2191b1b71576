package metrics

import (
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

// Metric names used as keys in a Report.
const (
	MetricRecall                 = "recall"
	MetricPrecision              = "precision"
	MetricAccuracy               = "accuracy"
	MetricF1                     = "f1_score"
	MetricMatthews               = "matthews_correlation"
	MetricFalsePositiveRate      = "false_positive_rate"
	MetricFalseNegativeRate      = "false_negative_rate"
	MetricTrueDiscoveryRate      = "true_discovery_rate"
	MetricFalseDiscoveryRate     = "false_discovery_rate"
	MetricNegativePredictiveRate = "negative_predictive_rate"
	MetricSpecificity            = "specificity"
)

// Metric is one labeled entry of a Report.
type Metric struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Report is the ordered result of evaluating every ratio of a ConfusionMatrix.
type Report struct {
	Matrix  ConfusionMatrix `json:"confusion_matrix"`
	Metrics []Metric        `json:"metrics"`
}

// Report evaluates all ratios in presentation order:
// recall, precision, accuracy, F1, Matthews, FPR, FNR, true discovery,
// false discovery, negative predictive rate and specificity.
func (cm ConfusionMatrix) Report() Report {
	return Report{
		Matrix: cm,
		Metrics: []Metric{
			{MetricRecall, "Recall / Sensitivity Rate", cm.RecallRate()},
			{MetricPrecision, "Precision Rate", cm.PrecisionRate()},
			{MetricAccuracy, "Accuracy", cm.Accuracy()},
			{MetricF1, "F1-Score / F Measure / Sorensen-Dice Index", cm.F1Score()},
			{MetricMatthews, "Matthews Correlation Coefficient", cm.MatthewsCorrelation()},
			{MetricFalsePositiveRate, "Type I Error / Fall Out / False Positive Rate", cm.FalsePositiveRate()},
			{MetricFalseNegativeRate, "Type II Error / False Negative Rate", cm.FalseNegativeRate()},
			{MetricTrueDiscoveryRate, "True Discovery Rate", cm.TrueDiscoveryRate()},
			{MetricFalseDiscoveryRate, "False Discovery Rate", cm.FalseDiscoveryRate()},
			{MetricNegativePredictiveRate, "Negative Predictive Rate", cm.NegativePredictiveRate()},
			{MetricSpecificity, "Specificity / True Negative Rate", cm.Specificity()},
		},
	}
}

// Get returns the value of the named metric.
func (r Report) Get(name string) (float64, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return 0, false
}

// Names returns the metric names in report order.
func (r Report) Names() []string {
	names := make([]string, len(r.Metrics))
	for i, m := range r.Metrics {
		names[i] = m.Name
	}
	return names
}

// JSON encodes the report with indentation, preserving metric order.
func (r Report) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "metrics: encode report")
	}
	return b, nil
}

// MarshalZerologObject adds the counts and every metric to a log event.
func (r Report) MarshalZerologObject(e *zerolog.Event) {
	e.Float64("tp", r.Matrix.TruePositive).
		Float64("tn", r.Matrix.TrueNegative).
		Float64("fp", r.Matrix.FalsePositive).
		Float64("fn", r.Matrix.FalseNegative)
	for _, m := range r.Metrics {
		e.Float64(m.Name, m.Value)
	}
}
