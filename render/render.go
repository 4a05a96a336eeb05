// Package render draws DTW alignments with gonum/plot.
//
//	Alignment — both series, the second shifted below the first, joined by
//	            one dashed connector per warping-path pair
//	WarpPath  — the path on the (i, j) index plane next to the diagonal
//
// Output goes to any io.Writer as PNG (default) or SVG.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/warp/dtw"
)

var (
	// ErrEmpty indicates an empty series or path.
	ErrEmpty = errors.New("render: nothing to draw")

	// ErrBadPath indicates a path cell outside the series bounds.
	ErrBadPath = errors.New("render: path cell out of range")

	// ErrFormat indicates an output format other than png or svg.
	ErrFormat = errors.New("render: unsupported format")
)

// Option customizes a drawing.
type Option func(*config)

type config struct {
	width, height vg.Length
	format        string
	title         string
}

func newConfig(opts ...Option) config {
	cfg := config{width: 8 * vg.Inch, height: 4 * vg.Inch, format: "png"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSize sets the canvas size. Panics unless both sides are positive.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic("render: WithSize(non-positive)")
	}
	return func(c *config) { c.width, c.height = width, height }
}

// WithFormat selects "png" or "svg"; other values fail at draw time with ErrFormat.
func WithFormat(format string) Option {
	return func(c *config) { c.format = format }
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

var connectorColor = color.Gray{Y: 160}

// Alignment draws a above b and one connector per path pair.
func Alignment(w io.Writer, a, b []float64, path []dtw.Coord, opts ...Option) error {
	cfg := newConfig(opts...)
	if len(a) == 0 || len(b) == 0 || len(path) == 0 {
		return ErrEmpty
	}
	if err := checkPath(path, len(a), len(b)); err != nil {
		return err
	}

	// shift b so that its maximum sits one margin below the minimum of a
	lo, hi := min(floats.Min(a), floats.Min(b)), max(floats.Max(a), floats.Max(b))
	margin := 0.2 * (hi - lo)
	if margin == 0 {
		margin = 1
	}
	shift := floats.Max(b) - floats.Min(a) + margin

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "index"
	p.Y.Label.Text = "value"

	for _, c := range path {
		seg := plotter.XYs{
			{X: float64(c.I), Y: a[c.I]},
			{X: float64(c.J), Y: b[c.J] - shift},
		}
		l, err := plotter.NewLine(seg)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		l.LineStyle.Color = connectorColor
		l.LineStyle.Width = vg.Points(0.5)
		l.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(l)
	}

	la, err := seriesLine(a, 0, 0)
	if err != nil {
		return err
	}
	lb, err := seriesLine(b, shift, 1)
	if err != nil {
		return err
	}
	p.Add(la, lb)
	p.Legend.Add("a", la)
	p.Legend.Add("b", lb)

	return save(w, p, cfg)
}

// WarpPath draws path on the n×m index plane with the corner-to-corner
// diagonal for reference.
func WarpPath(w io.Writer, path []dtw.Coord, n, m int, opts ...Option) error {
	cfg := newConfig(opts...)
	if n < 1 || m < 1 || len(path) == 0 {
		return ErrEmpty
	}
	if err := checkPath(path, n, m); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "i"
	p.Y.Label.Text = "j"

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: float64(n - 1), Y: float64(m - 1)}})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	diag.LineStyle.Color = connectorColor
	diag.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	pts := make(plotter.XYs, len(path))
	for k, c := range path {
		pts[k] = plotter.XY{X: float64(c.I), Y: float64(c.J)}
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	line.LineStyle.Color = plotutil.Color(0)
	scatter.Color = plotutil.Color(0)
	scatter.Radius = vg.Points(1.5)

	p.Add(plotter.NewGrid(), diag, line, scatter)
	p.Legend.Add("path", line, scatter)
	p.Legend.Add("diagonal", diag)

	return save(w, p, cfg)
}

func seriesLine(s []float64, shift float64, colorIdx int) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(s))
	for i, v := range s {
		pts[i] = plotter.XY{X: float64(i), Y: v - shift}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	l.LineStyle.Color = plotutil.Color(colorIdx)
	l.LineStyle.Width = vg.Points(1.5)

	return l, nil
}

func checkPath(path []dtw.Coord, n, m int) error {
	for k, c := range path {
		if c.I < 0 || c.I >= n || c.J < 0 || c.J >= m {
			return fmt.Errorf("%w: step %d at (%d,%d), bounds %d×%d", ErrBadPath, k, c.I, c.J, n, m)
		}
	}

	return nil
}

func save(w io.Writer, p *plot.Plot, cfg config) error {
	switch cfg.format {
	case "png", "svg":
	default:
		return fmt.Errorf("%w: %q", ErrFormat, cfg.format)
	}
	wt, err := p.WriterTo(cfg.width, cfg.height, cfg.format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", cfg.format, err)
	}

	return nil
}
