package linear

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

// LeastSquares は最小二乗法で切片と傾きを直接求める。
// 勾配降下の結果を検証するための基準解として使う。
//
// x を平均で中心化した計画行列 A = [1, x-x̄] を QR 分解で解くため、
// x の値が大きくても正規方程式のように条件数が悪化しない。
// x がすべて同じ値の場合は特異行列となりエラーを返す。
func LeastSquares(s *SampleSet) (Params, error) {
	if s == nil || s.Len() == 0 {
		return Params{}, errors.NewModelError("LeastSquares", "empty data", errors.ErrEmptyData)
	}
	if lo, hi := s.Bounds(); lo == hi {
		return Params{}, errors.NewModelError("LeastSquares", "singular matrix", errors.ErrSingularMatrix)
	}
	n := s.Len()
	xMean := stat.Mean(s.x, nil)

	A := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		A.Set(i, 0, 1.0)
		A.Set(i, 1, s.x[i]-xMean)
	}
	y := mat.NewVecDense(n, s.Y())

	var qr mat.QR
	qr.Factorize(A)

	var theta mat.VecDense
	if err := qr.SolveVecTo(&theta, false, y); err != nil {
		if errors.Is(err, mat.ErrSingular) {
			return Params{}, errors.NewModelError("LeastSquares", "singular matrix", errors.ErrSingularMatrix)
		}
		return Params{}, errors.NewModelError("LeastSquares", "ill-conditioned design matrix", err)
	}

	slope := theta.AtVec(1)
	return Params{Intercept: theta.AtVec(0) - slope*xMean, Slope: slope}, nil
}
