package scenario

import "testing"

func TestDefaultValidates(t *testing.T) {
	in := Default()
	if err := Validate(in); err != nil {
		t.Fatalf("reference default scenario should validate: %v", err)
	}
}

func TestValidateRejectsNonPositiveMonths(t *testing.T) {
	in := Default()
	in.NMonths = 0
	if err := Validate(in); err == nil {
		t.Error("expected error for NMONTHS <= 0")
	}
}

func TestValidateRejectsBadSeasonality(t *testing.T) {
	in := Default()
	in.Seasonality[0] += 1
	if err := Validate(in); err == nil {
		t.Error("expected error for seasonality not summing to 1")
	}
}

func TestValidateRejectsInvertedShutoffDelay(t *testing.T) {
	in := Default()
	in.Delay.FeedShutoffMonths = 0
	in.Delay.BiofuelShutoffMonths = 1
	if err := Validate(in); err == nil {
		t.Error("expected error when feed shutoff precedes biofuel shutoff")
	}
}

func TestValidateRejectsNegativeCullDurationWhenFatIncluded(t *testing.T) {
	in := Default()
	in.IncludeFat = true
	in.Livestock.CullDuration = -1
	if err := Validate(in); err == nil {
		t.Error("expected error for negative cull duration with fat included")
	}
}

func TestDecodeWithNoFileReturnsDefault(t *testing.T) {
	in, err := ReadConfigFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.NMonths != Default().NMonths {
		t.Errorf("want default NMonths, got %v", in.NMonths)
	}
}

func TestNDays(t *testing.T) {
	in := Default()
	if in.NDays() != in.NMonths*30 {
		t.Errorf("NDays should be NMonths*30")
	}
}
