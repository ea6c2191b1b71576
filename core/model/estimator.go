package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// LinearModel は線形モデルのインターフェース
type LinearModel interface {
	// Coef は学習された傾き（係数）を返す
	Coef() []float64
	// Intercept は学習された切片を返す
	Intercept() float64
	// Score はモデルの決定係数（R²）を計算する
	Score(X, y mat.Matrix) (float64, error)
}

// IterativeModel は反復最適化で学習するモデルのインターフェース
type IterativeModel interface {
	// NIter は直近の Fit で実行した反復回数を返す
	NIter() int
}
