package linear

import (
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdeval/core/model"
	"github.com/YuminosukeSato/gdeval/metrics"
	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

const regressorName = "GDRegression"

var (
	_ model.Fitter         = (*GDRegression)(nil)
	_ model.Predictor      = (*GDRegression)(nil)
	_ model.LinearModel    = (*GDRegression)(nil)
	_ model.IterativeModel = (*GDRegression)(nil)
)

// GDRegression は GradientDescent を gonum 行列の推定器インターフェースで包む。
// X は n×1 の行列のみを受け付ける。
type GDRegression struct {
	state  *model.StateManager
	fitter *GradientDescent

	mu     sync.RWMutex
	params Params
}

// NewGDRegression は新しい推定器を作成する
func NewGDRegression(opts ...Option) *GDRegression {
	return &GDRegression{
		state:  model.NewStateManager(),
		fitter: NewGradientDescent(opts...),
	}
}

// Fit はモデルを訓練データで学習させる
func (r *GDRegression) Fit(X, y mat.Matrix) error {
	samples, err := SamplesFromMatrix(X, y)
	if err != nil {
		return err
	}

	res, err := r.fitter.Fit(samples)
	if err != nil {
		r.state.Reset()
		return errors.Wrapf(err, "%s.Fit", regressorName)
	}

	r.mu.Lock()
	r.params = res.Params
	r.mu.Unlock()
	r.state.MarkFitted(1, samples.Len(), res.Iterations)
	return nil
}

// Predict は入力データに対する予測を行う
func (r *GDRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := r.state.RequireFitted(regressorName, "Predict"); err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	if rows == 0 {
		return nil, errors.NewValueError(regressorName+".Predict", "empty data")
	}
	if cols != 1 {
		return nil, errors.NewDimensionError(regressorName+".Predict", 1, cols, 1)
	}

	p := r.Params()
	pred := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		pred.SetVec(i, Hypothesis(p, X.At(i, 0)))
	}
	return pred, nil
}

// Score はモデルの決定係数（R²）を計算する
func (r *GDRegression) Score(X, y mat.Matrix) (float64, error) {
	if err := r.state.RequireFitted(regressorName, "Score"); err != nil {
		return 0, err
	}

	pred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	rows, cols := y.Dims()
	if rows == 0 || cols != 1 {
		return 0, errors.NewValueError(regressorName+".Score", "y must be a column vector")
	}
	return metrics.R2Score(mat.NewVecDense(rows, mat.Col(nil, 0, y)), pred.(*mat.VecDense))
}

// Params returns the fitted intercept and slope.
func (r *GDRegression) Params() Params {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.params
}

// Intercept は学習された切片を返す
func (r *GDRegression) Intercept() float64 {
	if !r.state.IsFitted() {
		return 0
	}
	return r.Params().Intercept
}

// Coef は学習された傾きを返す
func (r *GDRegression) Coef() []float64 {
	if !r.state.IsFitted() {
		return nil
	}
	return []float64{r.Params().Slope}
}

// NIter は直近の Fit の反復回数を返す
func (r *GDRegression) NIter() int {
	return r.state.Iterations()
}

// IsFitted reports whether Fit has succeeded.
func (r *GDRegression) IsFitted() bool {
	return r.state.IsFitted()
}
