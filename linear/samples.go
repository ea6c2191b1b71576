package linear

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

// SampleSet は (x, y) の組を保持する不変な学習データ
type SampleSet struct {
	x []float64
	y []float64
}

// NewSampleSet は x と y をコピーして SampleSet を作成する。
// 空の入力、長さの不一致、NaN/Inf を含む入力はエラーになる。
func NewSampleSet(x, y []float64) (*SampleSet, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, errors.NewValidationError("samples", "sample set must not be empty", len(x))
	}
	if len(x) != len(y) {
		return nil, errors.NewDimensionError("NewSampleSet", len(x), len(y), 0)
	}
	if err := checkFinite("x", x); err != nil {
		return nil, err
	}
	if err := checkFinite("y", y); err != nil {
		return nil, err
	}

	s := &SampleSet{
		x: make([]float64, len(x)),
		y: make([]float64, len(y)),
	}
	copy(s.x, x)
	copy(s.y, y)
	return s, nil
}

func checkFinite(name string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.NewValidationError(name, "values must be finite", v)
		}
	}
	return nil
}

// SamplesFromMatrix は n×1 の X と y から SampleSet を作成する
func SamplesFromMatrix(X, y mat.Matrix) (*SampleSet, error) {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return nil, errors.NewValidationError("X", "sample set must not be empty", r)
	}
	if c != 1 {
		return nil, errors.NewDimensionError("SamplesFromMatrix", 1, c, 1)
	}
	if ry != r {
		return nil, errors.NewDimensionError("SamplesFromMatrix", r, ry, 0)
	}
	if cy != 1 {
		return nil, errors.NewValueError("SamplesFromMatrix", "y must be a column vector")
	}

	return NewSampleSet(mat.Col(nil, 0, X), mat.Col(nil, 0, y))
}

// Len returns the number of samples.
func (s *SampleSet) Len() int {
	return len(s.x)
}

// At returns the i-th sample.
func (s *SampleSet) At(i int) (x, y float64) {
	return s.x[i], s.y[i]
}

// X returns a copy of the inputs.
func (s *SampleSet) X() []float64 {
	return append([]float64(nil), s.x...)
}

// Y returns a copy of the targets.
func (s *SampleSet) Y() []float64 {
	return append([]float64(nil), s.y...)
}

// Bounds returns the smallest and largest x.
func (s *SampleSet) Bounds() (lo, hi float64) {
	return floats.Min(s.x), floats.Max(s.x)
}
