package analysis

import "testing"

func TestAnalyzeFlagsLooseObjective(t *testing.T) {
	humansFed := []float64{80, 70, 90}
	r := Analyze(75, humansFed, 100, nil, nil, true)
	if r.ObjectiveTight {
		t.Error("expected objective tightness check to fail: objective 75 != min(humansFed) 70")
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a warning recorded for the loose objective")
	}
}

func TestAnalyzeAcceptsTightObjective(t *testing.T) {
	humansFed := []float64{80, 70, 90}
	r := Analyze(70, humansFed, 100, nil, nil, true)
	if !r.ObjectiveTight {
		t.Error("expected objective tightness check to pass")
	}
}

func TestAnalyzeFlagsUnbalancedStock(t *testing.T) {
	r := Analyze(70, []float64{70}, 100, nil, []float64{1e-3}, true)
	if r.StockBalanced {
		t.Error("expected stock balance check to fail for a 1e-3 residual")
	}
}

func TestAnalyzeComputesPercentFed(t *testing.T) {
	r := Analyze(50, []float64{50, 60}, 100, nil, nil, true)
	if r.PercentFedByMonth[0] != 50 || r.PercentFedByMonth[1] != 60 {
		t.Errorf("want [50 60], got %v", r.PercentFedByMonth)
	}
}

func TestValidateReturnsErrorWhenWarningsPresent(t *testing.T) {
	r := Analyze(0, []float64{1}, 100, nil, nil, false)
	if err := r.Validate(); err == nil {
		t.Error("expected Validate to return an error when optimal is false")
	}
}
