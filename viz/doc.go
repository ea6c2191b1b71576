// Package viz provides optional observers that visualise a gradient-descent
// fit. LinePlotter renders the regression line over the samples as PNG
// images with gonum/plot, and TraceRecorder collects the cost and parameter
// trace and renders it as an HTML page with go-echarts.
//
// Both types implement linear.Observer and are attached with
// linear.WithObserver. The fitter itself never depends on this package.
package viz
