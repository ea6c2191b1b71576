package linear

// Params は単回帰直線 y = Intercept + Slope·x のパラメータ
type Params struct {
	Intercept float64
	Slope     float64
}

// Hypothesis は x に対する予測値を返す
func Hypothesis(p Params, x float64) float64 {
	return p.Intercept + p.Slope*x
}

// Cost は二乗誤差の半分の総和 Σ 0.5·(ŷ−y)² を返す
func Cost(p Params, s *SampleSet) float64 {
	var cost float64
	for i := range s.x {
		r := Hypothesis(p, s.x[i]) - s.y[i]
		cost += 0.5 * r * r
	}
	return cost
}

// Gradients は切片と傾きの勾配をサンプル数で平均して返す
//
//	dIntercept = mean(ŷ−y)
//	dSlope     = mean((ŷ−y)·x)
func Gradients(p Params, s *SampleSet) (dIntercept, dSlope float64) {
	for i := range s.x {
		r := Hypothesis(p, s.x[i]) - s.y[i]
		dIntercept += r
		dSlope += r * s.x[i]
	}
	n := float64(len(s.x))
	return dIntercept / n, dSlope / n
}

// UpdateParameters は 1 ステップ分の勾配降下を行った新しいパラメータを返す
func UpdateParameters(p Params, s *SampleSet, learningRate float64) Params {
	dIntercept, dSlope := Gradients(p, s)
	return Params{
		Intercept: p.Intercept - learningRate*dIntercept,
		Slope:     p.Slope - learningRate*dSlope,
	}
}
