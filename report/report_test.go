package report

import (
	"bytes"
	"testing"

	"github.com/mullach/allfed-integrated-model/analysis"
)

func TestMultiFansOutToEveryObserver(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogObserver()
	plotObs := NewPlotObserver(&buf)
	m := Multi{log, plotObs}

	r := &analysis.Report{PercentFedByMonth: []float64{90, 95}, Optimal: true}
	m.ObserveReport("baseline", r)

	if buf.Len() == 0 {
		t.Error("expected the plot observer to write PNG bytes")
	}
}

func TestMinOf(t *testing.T) {
	if minOf([]float64{3, 1, 2}) != 1 {
		t.Error("want 1")
	}
	if minOf(nil) != 0 {
		t.Error("want 0 for empty input")
	}
}
