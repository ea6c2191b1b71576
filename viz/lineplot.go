package viz

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/gdeval/linear"
	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 4 * vg.Inch
)

// LinePlotter writes one PNG per observed snapshot to Dir, showing the
// samples and the current regression line. Rendering errors do not stop the
// fit; the first one is kept and returned by Err.
type LinePlotter struct {
	Dir    string
	Width  vg.Length
	Height vg.Length

	samples *linear.SampleSet

	mu    sync.Mutex
	files []string
	err   error
}

var _ linear.Observer = (*LinePlotter)(nil)

// NewLinePlotter creates a plotter for samples writing into dir.
func NewLinePlotter(dir string, samples *linear.SampleSet) *LinePlotter {
	return &LinePlotter{
		Dir:     dir,
		Width:   defaultWidth,
		Height:  defaultHeight,
		samples: samples,
	}
}

// Observe implements linear.Observer.
func (lp *LinePlotter) Observe(s linear.Snapshot) {
	path := filepath.Join(lp.Dir, fmt.Sprintf("fit_%06d.png", s.Iteration))
	err := lp.save(path, s)

	lp.mu.Lock()
	defer lp.mu.Unlock()
	if err != nil {
		if lp.err == nil {
			lp.err = err
		}
		return
	}
	lp.files = append(lp.files, path)
}

func (lp *LinePlotter) save(path string, s linear.Snapshot) error {
	title := fmt.Sprintf("iteration %d, cost %.6g", s.Iteration, s.Cost)
	p, err := newFitPlot(lp.samples, s.Params, title)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(lp.Dir, 0o755); err != nil {
		return errors.Wrap(err, "viz: create plot directory")
	}
	if err := p.Save(lp.Width, lp.Height, path); err != nil {
		return errors.Wrapf(err, "viz: save %s", path)
	}
	return nil
}

// Files returns the paths written so far.
func (lp *LinePlotter) Files() []string {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return append([]string(nil), lp.files...)
}

// Err returns the first rendering error, if any.
func (lp *LinePlotter) Err() error {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return lp.err
}

// RenderFit writes a PNG of samples and the line described by params to w.
func RenderFit(w io.Writer, samples *linear.SampleSet, params linear.Params, title string) error {
	p, err := newFitPlot(samples, params, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(defaultWidth, defaultHeight, "png")
	if err != nil {
		return errors.Wrap(err, "viz: encode png")
	}
	_, err = wt.WriteTo(w)
	return errors.Wrap(err, "viz: write png")
}

func newFitPlot(samples *linear.SampleSet, params linear.Params, title string) (*plot.Plot, error) {
	if samples == nil || samples.Len() == 0 {
		return nil, errors.NewValidationError("samples", "sample set must not be empty", 0)
	}

	pts := make(plotter.XYs, samples.Len())
	for i := range pts {
		pts[i].X, pts[i].Y = samples.At(i)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "viz: scatter")
	}

	fit := plotter.NewFunction(func(x float64) float64 {
		return linear.Hypothesis(params, x)
	})
	fit.XMin, fit.XMax = samples.Bounds()
	fit.Width = vg.Points(1.5)

	p.Add(scatter, fit)
	p.Legend.Add("samples", scatter)
	p.Legend.Add(fmt.Sprintf("y = %.3f + %.3fx", params.Intercept, params.Slope), fit)
	return p, nil
}
