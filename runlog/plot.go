package runlog

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNothingToPlot is returned by PlotRounds when no round has a finite best.
var ErrNothingToPlot = errors.New("runlog: no finite rounds to plot")

// PlotRounds draws the swarm best and the mean candidate log-likelihood per
// round and saves the chart to path; the image format follows the file
// extension (png, svg, pdf, ...). Rounds with a non-finite best are skipped.
func PlotRounds(rounds []RoundSummary, title, path string) error {
	var best, mean plotter.XYs
	for _, r := range rounds {
		if math.IsInf(r.Best, 0) || math.IsNaN(r.Best) {
			continue
		}
		best = append(best, plotter.XY{X: float64(r.Round), Y: r.Best})
		mean = append(mean, plotter.XY{X: float64(r.Round), Y: r.Mean})
	}
	if len(best) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Round"
	p.Y.Label.Text = "Log-likelihood"

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return fmt.Errorf("PlotRounds: %w", err)
	}
	meanLine, err := plotter.NewLine(mean)
	if err != nil {
		return fmt.Errorf("PlotRounds: %w", err)
	}
	meanLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("PlotRounds: %w", err)
	}
	return nil
}
