package report

import (
	"github.com/sirupsen/logrus"

	"github.com/mullach/allfed-integrated-model/analysis"
)

// LogObserver renders a Report as structured log lines, the way
// cmd/inmapweb wires a logrus.Logger for request-scoped diagnostics.
type LogObserver struct {
	Logger *logrus.Logger
}

// NewLogObserver returns a LogObserver backed by a dedicated logrus
// logger configured with a text formatter, following the same
// SetFormatter/SetLevel pattern as the reference web server's logger.
func NewLogObserver() *LogObserver {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &LogObserver{Logger: l}
}

// ObserveReport implements Observer.
func (o *LogObserver) ObserveReport(scenarioName string, r *analysis.Report) {
	entry := o.Logger.WithFields(logrus.Fields{
		"scenario": scenarioName,
		"optimal":  r.Optimal,
	})

	min := minOf(r.PercentFedByMonth)
	entry.WithField("min_percent_fed", min).Info("solved scenario")

	for _, w := range r.Warnings {
		entry.Warn(w)
	}
}

func minOf(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	m := a[0]
	for _, v := range a[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
