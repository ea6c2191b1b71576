package metrics_test

import (
	"fmt"

	"github.com/YuminosukeSato/gdeval/metrics"
)

func ExampleConfusionMatrix_Report() {
	cm, err := metrics.NewConfusionMatrix(50, 40, 5, 5)
	if err != nil {
		panic(err)
	}

	for _, m := range cm.Report().Metrics {
		fmt.Printf("%s: %.3f\n", m.Name, m.Value)
	}
	// Output:
	// recall: 90.909
	// precision: 90.909
	// accuracy: 90.000
	// f1_score: 0.909
	// matthews_correlation: 0.798
	// false_positive_rate: 11.111
	// false_negative_rate: 9.091
	// true_discovery_rate: 11.111
	// false_discovery_rate: 9.091
	// negative_predictive_rate: 88.889
	// specificity: 88.889
}

func ExampleMatthewsCorrelation() {
	fmt.Println(metrics.MatthewsCorrelation(7, 3, 0, 0))
	fmt.Println(metrics.MatthewsCorrelation(0, 0, 0, 0))
	// Output:
	// 1
	// 0
}
