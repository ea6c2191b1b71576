package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

// checkPair は回帰指標の入力を検証する
func checkPair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}
	return n, nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// R2Score は決定係数（R²）を計算する。
// yTrue が定数の場合は全変動が 0 になるためエラーを返す。
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	truth := mat.Col(nil, 0, yTrue)
	yMean := stat.Mean(truth, nil)

	var tss, rss float64
	for i := 0; i < n; i++ {
		d := truth[i] - yMean
		r := truth[i] - yPred.AtVec(i)
		tss += d * d
		rss += r * r
	}

	if tss == 0 {
		return 0, errors.NewValueError("R2Score", "total sum of squares is zero (no variance in yTrue)")
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}
