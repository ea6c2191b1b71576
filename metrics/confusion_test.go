package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

func TestConfusionRatios(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(tp, tn, fp, fn float64) float64
		counts [4]float64 // tp, tn, fp, fn
		want   float64
	}{
		{"recall", func(tp, tn, fp, fn float64) float64 { return RecallRate(tp, fn) }, [4]float64{50, 40, 5, 5}, 90.909},
		{"precision", func(tp, tn, fp, fn float64) float64 { return PrecisionRate(tp, fp) }, [4]float64{50, 40, 5, 5}, 90.909},
		{"false discovery", func(tp, tn, fp, fn float64) float64 { return FalseDiscoveryRate(tp, fp) }, [4]float64{50, 40, 5, 5}, 9.091},
		{"false positive", func(tp, tn, fp, fn float64) float64 { return FalsePositiveRate(tn, fp) }, [4]float64{50, 40, 5, 5}, 11.111},
		{"false negative", func(tp, tn, fp, fn float64) float64 { return FalseNegativeRate(tp, fn) }, [4]float64{50, 40, 5, 5}, 9.091},
		{"true discovery", func(tp, tn, fp, fn float64) float64 { return TrueDiscoveryRate(tn, fn) }, [4]float64{50, 40, 5, 5}, 11.111},
		{"negative predictive", func(tp, tn, fp, fn float64) float64 { return NegativePredictiveRate(tn, fn) }, [4]float64{50, 40, 5, 5}, 88.889},
		{"specificity", func(tp, tn, fp, fn float64) float64 { return Specificity(tn, fp) }, [4]float64{50, 40, 5, 5}, 88.889},
		{"accuracy", Accuracy, [4]float64{50, 40, 5, 5}, 90.0},
		{"f1", func(tp, tn, fp, fn float64) float64 { return F1Score(tp, fp, fn) }, [4]float64{50, 40, 5, 5}, 0.909},
		{"matthews", MatthewsCorrelation, [4]float64{50, 40, 5, 5}, 0.798},
		{"accuracy is conventional", Accuracy, [4]float64{10, 10, 0, 0}, 100.0},
		{"matthews perfect", MatthewsCorrelation, [4]float64{7, 3, 0, 0}, 1.0},
		{"matthews inverse", MatthewsCorrelation, [4]float64{0, 0, 3, 2}, -1.0},
		{"matthews zero marginal", MatthewsCorrelation, [4]float64{1, 0, 0, 0}, 0.0},
		{"precision without predictions", func(tp, tn, fp, fn float64) float64 { return PrecisionRate(tp, fp) }, [4]float64{0, 9, 0, 4}, 0.0},
		{"fractional counts", func(tp, tn, fp, fn float64) float64 { return RecallRate(tp, fn) }, [4]float64{0.5, 0, 0, 1.5}, 25.0},
		// ties round half away from zero
		{"percent tie", func(tp, tn, fp, fn float64) float64 { return RecallRate(tp, fn) }, [4]float64{1, 0, 0, 63}, 1.563},
		{"fraction tie", func(tp, tn, fp, fn float64) float64 { return F1Score(tp, fp, fn) }, [4]float64{1, 0, 30, 0}, 0.063},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.counts
			got := tt.fn(c[0], c[1], c[2], c[3])
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConfusionMatrixAllZero(t *testing.T) {
	cm, err := NewConfusionMatrix(0, 0, 0, 0)
	require.NoError(t, err)

	for _, m := range cm.Report().Metrics {
		assert.Equal(t, 0.0, m.Value, m.Name)
		assert.False(t, math.IsNaN(m.Value), m.Name)
	}
}

func TestConfusionMatrixMethodsMatchFunctions(t *testing.T) {
	cm, err := NewConfusionMatrix(13, 71, 9, 4)
	require.NoError(t, err)

	tp, tn, fp, fn := cm.TruePositive, cm.TrueNegative, cm.FalsePositive, cm.FalseNegative
	assert.Equal(t, RecallRate(tp, fn), cm.RecallRate())
	assert.Equal(t, PrecisionRate(tp, fp), cm.PrecisionRate())
	assert.Equal(t, FalseDiscoveryRate(tp, fp), cm.FalseDiscoveryRate())
	assert.Equal(t, FalsePositiveRate(tn, fp), cm.FalsePositiveRate())
	assert.Equal(t, FalseNegativeRate(tp, fn), cm.FalseNegativeRate())
	assert.Equal(t, TrueDiscoveryRate(tn, fn), cm.TrueDiscoveryRate())
	assert.Equal(t, NegativePredictiveRate(tn, fn), cm.NegativePredictiveRate())
	assert.Equal(t, Specificity(tn, fp), cm.Specificity())
	assert.Equal(t, Accuracy(tp, tn, fp, fn), cm.Accuracy())
	assert.Equal(t, F1Score(tp, fp, fn), cm.F1Score())
	assert.Equal(t, MatthewsCorrelation(tp, tn, fp, fn), cm.MatthewsCorrelation())
	assert.Equal(t, 97.0, cm.Total())
}

func TestConfusionRatioRanges(t *testing.T) {
	grid := []float64{0, 1, 2, 5, 17, 100}
	for _, tp := range grid {
		for _, tn := range grid {
			for _, fp := range grid {
				for _, fn := range grid {
					cm := ConfusionMatrix{tp, tn, fp, fn}
					for _, m := range cm.Report().Metrics {
						switch m.Name {
						case MetricF1:
							assert.True(t, m.Value >= 0 && m.Value <= 1, "%s=%v for %v", m.Name, m.Value, cm)
						case MetricMatthews:
							assert.True(t, m.Value >= -1 && m.Value <= 1, "%s=%v for %v", m.Name, m.Value, cm)
						default:
							assert.True(t, m.Value >= 0 && m.Value <= 100, "%s=%v for %v", m.Name, m.Value, cm)
						}
						// three decimals at most
						assert.InDelta(t, m.Value, math.Round(m.Value*1000)/1000, 1e-9)
					}
					if tp+fn > 0 {
						assert.InDelta(t, 100.0, cm.RecallRate()+cm.FalseNegativeRate(), 0.0011)
					}
				}
			}
		}
	}
}

func TestNewConfusionMatrixValidation(t *testing.T) {
	tests := []struct {
		name      string
		counts    [4]float64
		wantParam string
	}{
		{"negative tp", [4]float64{-1, 0, 0, 0}, "tp"},
		{"negative fn", [4]float64{1, 2, 3, -4}, "fn"},
		{"nan tn", [4]float64{1, math.NaN(), 0, 0}, "tn"},
		{"inf fp", [4]float64{1, 0, math.Inf(1), 0}, "fp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.counts
			_, err := NewConfusionMatrix(c[0], c[1], c[2], c[3])
			require.Error(t, err)

			var ve *errors.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantParam, ve.ParamName)
		})
	}
}

func TestConfusionMatrixFromLabels(t *testing.T) {
	yTrue := mat.NewVecDense(6, []float64{1, 1, 0, 0, 1, 0})
	yPred := mat.NewVecDense(6, []float64{1, 0, 0, 1, 1, 0})

	cm, err := ConfusionMatrixFromLabels(yTrue, yPred)
	require.NoError(t, err)
	assert.Equal(t, ConfusionMatrix{TruePositive: 2, TrueNegative: 2, FalsePositive: 1, FalseNegative: 1}, cm)

	t.Run("non binary label", func(t *testing.T) {
		_, err := ConfusionMatrixFromLabels(yTrue, mat.NewVecDense(6, []float64{1, 0, 2, 1, 1, 0}))
		var ve *errors.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "yPred", ve.ParamName)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := ConfusionMatrixFromLabels(yTrue, mat.NewVecDense(2, []float64{1, 0}))
		var de *errors.DimensionError
		require.True(t, errors.As(err, &de))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ConfusionMatrixFromLabels(&mat.VecDense{}, &mat.VecDense{})
		assert.Error(t, err)
	})
}
