// Package gdeval provides two small numerical tools for Go: a binary
// classification evaluation engine built on confusion-matrix counts, and a
// univariate linear regression fitted by batch gradient descent.
//
// # Features
//
//   - Confusion-matrix ratios: recall, precision, specificity, F1, Matthews
//     correlation and more, rounded to three decimals, with a safe 0 result
//     for empty denominators
//   - Gradient descent with pluggable termination: exact cost plateau by
//     default, tolerance and iteration caps on request
//   - Reproducible fits through an injected random source
//   - Periodic observers for plotting and tracing, isolated from the fit
//   - Structured errors (cockroachdb/errors) and logging (zerolog)
//
// # Quick Start
//
// Evaluating a classifier:
//
//	cm, err := metrics.NewConfusionMatrix(50, 40, 5, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range cm.Report().Metrics {
//	    fmt.Printf("%-30s %8.3f\n", m.Label, m.Value)
//	}
//
// Fitting a line:
//
//	samples, err := linear.NewSampleSet(
//	    []float64{0, 1, 2, 3, 4, 5},
//	    []float64{3, 5, 7, 9, 11, 13},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gd := linear.NewGradientDescent(
//	    linear.WithLearningRate(0.01),
//	    linear.WithRandomState(42),
//	)
//	res, err := gd.Fit(samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Params.Intercept, res.Params.Slope)
//
// # Packages
//
//   - metrics: confusion-matrix ratios, reports and regression errors (MSE, RMSE, MAE, R²)
//   - linear: gradient-descent fitter, termination policies, observers, least-squares baseline
//   - viz: gonum/plot and go-echarts observers
//   - core/model: estimator interfaces and fitted-state tracking
//   - pkg/errors: error types, warnings and numeric helpers
//   - pkg/log: zerolog-backed structured logging
//   - pkg/config: viper configuration
//
// # License
//
// gdeval is released under the MIT License.
package gdeval
