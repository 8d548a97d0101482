// Package plotting renders airfoil sections, spanwise circulation
// loading, and streamlines as PNG line plots, wrapping
// gonum.org/v1/plot the way the pack's own gonum/plot usage does:
// build plotter.XYs series, add them via plotutil.AddLinePoints, save
// with vg.Inch sizing. It is a boundary/visualization concern, outside
// the algorithmic core.
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/aeromdao/airfoil"
	"github.com/notargets/aeromdao/geom"
	"github.com/notargets/aeromdao/panel"
)

// PlotAirfoil renders af's ordered point loop as a single closed line
// and saves it as a PNG at path.
func PlotAirfoil(af *airfoil.Airfoil, path string) error {
	p := plot.New()
	p.Title.Text = "Airfoil section"
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "y/c"

	pts := make(plotter.XYs, len(af.Points)+1)
	for i, pt := range af.Points {
		pts[i] = plotter.XY{X: pt[0], Y: pt[1]}
	}
	pts[len(af.Points)] = plotter.XY{X: af.Points[0][0], Y: af.Points[0][1]}

	if err := plotutil.AddLinePoints(p, "section", pts); err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	if err := p.Save(8*vg.Inch, 3*vg.Inch, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}
	return nil
}

// PlotSpanLoading renders spanwise circulation strength (panel
// centroid y vs Gamma) as a single line, one point per bound panel.
func PlotSpanLoading(panels []panel.Panel3D, gamma []float64, path string) error {
	if len(panels) != len(gamma) {
		return fmt.Errorf("plotting: %d panels but %d circulations", len(panels), len(gamma))
	}
	p := plot.New()
	p.Title.Text = "Spanwise circulation loading"
	p.X.Label.Text = "y"
	p.Y.Label.Text = "Gamma"

	pts := make(plotter.XYs, len(panels))
	for i, pn := range panels {
		pts[i] = plotter.XY{X: pn.Centroid()[1], Y: gamma[i]}
	}
	if err := plotutil.AddLinePoints(p, "Gamma(y)", pts); err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}
	return nil
}

// PlotStreamlines renders one XY line per traced streamline, using
// (x, z) so a wing-planform-plane observer sees the streamwise/vertical
// profile of the flow.
func PlotStreamlines(lines [][]geom.Point3D, path string) error {
	p := plot.New()
	p.Title.Text = "Streamlines"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "z"

	var args []interface{}
	for i, line := range lines {
		pts := make(plotter.XYs, len(line))
		for k, pt := range line {
			pts[k] = plotter.XY{X: pt[0], Y: pt[2]}
		}
		args = append(args, fmt.Sprintf("line%d", i), pts)
	}
	if len(args) == 0 {
		return fmt.Errorf("plotting: no streamlines to plot")
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}
	return nil
}
