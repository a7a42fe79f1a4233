// Package report renders a solved Report to a human (logging) or a plot,
// kept behind an Observer interface so the pure core never depends on a
// rendering library directly, per the plotting-as-side-effect design note.
package report

import "github.com/mullach/allfed-integrated-model/analysis"

// Observer receives analysis results as they become available. A single
// run may notify multiple observers (e.g. a logger and a plotter).
type Observer interface {
	ObserveReport(scenarioName string, r *analysis.Report)
}

// Multi fans a single notification out to every observer in the slice.
type Multi []Observer

// ObserveReport implements Observer by notifying every member of m.
func (m Multi) ObserveReport(scenarioName string, r *analysis.Report) {
	for _, o := range m {
		o.ObserveReport(scenarioName, r)
	}
}
