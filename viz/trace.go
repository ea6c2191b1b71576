package viz

import (
	"io"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/YuminosukeSato/gdeval/linear"
	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

// TraceRecorder keeps every observed snapshot and renders the cost and
// parameter trajectories as an HTML page.
type TraceRecorder struct {
	mu        sync.Mutex
	snapshots []linear.Snapshot
}

var _ linear.Observer = (*TraceRecorder)(nil)

// NewTraceRecorder creates an empty recorder.
func NewTraceRecorder() *TraceRecorder {
	return &TraceRecorder{}
}

// Observe implements linear.Observer.
func (r *TraceRecorder) Observe(s linear.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, s)
}

// Snapshots returns a copy of the recorded snapshots.
func (r *TraceRecorder) Snapshots() []linear.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]linear.Snapshot(nil), r.snapshots...)
}

// CostChart plots the cost against the iteration number.
func (r *TraceRecorder) CostChart() *charts.Line {
	snaps := r.Snapshots()
	costs := make([]opts.LineData, 0, len(snaps))
	for _, s := range snaps {
		costs = append(costs, opts.LineData{Value: s.Cost})
	}

	line := newTraceLine("Cost", "cost")
	line.SetXAxis(iterations(snaps)).
		AddSeries("Cost", costs)
	return line
}

// ParamsChart plots intercept and slope against the iteration number.
func (r *TraceRecorder) ParamsChart() *charts.Line {
	snaps := r.Snapshots()
	intercepts := make([]opts.LineData, 0, len(snaps))
	slopes := make([]opts.LineData, 0, len(snaps))
	for _, s := range snaps {
		intercepts = append(intercepts, opts.LineData{Value: s.Params.Intercept})
		slopes = append(slopes, opts.LineData{Value: s.Params.Slope})
	}

	line := newTraceLine("Parameters", "value")
	line.SetXAxis(iterations(snaps)).
		AddSeries("Intercept", intercepts).
		AddSeries("Slope", slopes)
	return line
}

// Render writes an HTML page with both charts to w.
func (r *TraceRecorder) Render(w io.Writer) error {
	page := components.NewPage()
	page.AddCharts(r.CostChart(), r.ParamsChart())
	return errors.Wrap(page.Render(w), "viz: render trace")
}

func newTraceLine(title, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return line
}

func iterations(snaps []linear.Snapshot) []int {
	xs := make([]int, len(snaps))
	for i, s := range snaps {
		xs[i] = s.Iteration
	}
	return xs
}
