package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mullach/allfed-integrated-model/analysis"
)

// PlotObserver renders each Report's monthly percent-fed curve to a PNG,
// following the same plot.New/plotter/vg pipeline the reference model's
// eioserve legend renderer uses.
type PlotObserver struct {
	Writer io.Writer
	Width  vg.Length
	Height vg.Length
}

// NewPlotObserver returns a PlotObserver writing 6x4 inch PNGs to w.
func NewPlotObserver(w io.Writer) *PlotObserver {
	return &PlotObserver{Writer: w, Width: 6 * vg.Inch, Height: 4 * vg.Inch}
}

// ObserveReport implements Observer by plotting percent-fed by month.
func (o *PlotObserver) ObserveReport(scenarioName string, r *analysis.Report) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: percent of need fed by month", scenarioName)
	p.X.Label.Text = "month"
	p.Y.Label.Text = "percent of need fed"

	pts := make(plotter.XYs, len(r.PercentFedByMonth))
	for m, v := range r.PercentFedByMonth {
		pts[m].X = float64(m)
		pts[m].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return
	}
	p.Add(line)

	wt, err := p.WriterTo(o.Width, o.Height, "png")
	if err != nil {
		return
	}
	wt.WriteTo(o.Writer)
}
