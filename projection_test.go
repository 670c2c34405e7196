package finplan

import (
	"math"
	"testing"
)

// feeSnapshot is a 1,000,000 ZAR portfolio paying 0.5% platform, 0.5%
// advisor and carrying a 0.25% TER.
func feeSnapshot() *Snapshot {
	return &Snapshot{
		Settings: Settings{
			Currency:  "ZAR",
			Platforms: []Platform{{ID: "ee", Fee: PercentFee{Rate: 0.5}}},
			Advisor:   AdvisorFee{Enabled: true, Structure: PercentFee{Rate: 0.5}},
		},
		Assets: []Asset{withTER(withPlatform(equity("EQ", 1, 1000000, "ZAR"), "ee"), 0.25)},
	}
}

func TestProjection_FirstYear(t *testing.T) {
	s := feeSnapshot()
	p := s.NewProjection(10, 10, 5)

	if len(p.Rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(p.Rows))
	}

	// Year 1: both trajectories grow to 1,100,000; the 1.25% blended rate
	// charges 13,750 against the with-fees trajectory only.
	y1 := p.Rows[0]
	if !y1.WithoutFees.Equal(ZAR(1100000)) {
		t.Errorf("year-1 without fees = %v, want %v", y1.WithoutFees, ZAR(1100000))
	}
	if !approx(y1.Fee.AsFloat(), 13750) {
		t.Errorf("year-1 fee = %v, want 13750", y1.Fee)
	}
	if !approx(y1.WithFees.AsFloat(), 1100000-13750) {
		t.Errorf("year-1 with fees = %v", y1.WithFees)
	}
	// Present value discounts one year of 5% inflation.
	if !approx(y1.FeePV.AsFloat(), 13750/1.05) {
		t.Errorf("year-1 fee PV = %v, want %v", y1.FeePV, 13750/1.05)
	}
}

func TestProjection_FeeDragIdentity(t *testing.T) {
	p := feeSnapshot().NewProjection(30, 9, 5)

	// By construction, drag is exactly the final gap.
	want := p.FinalWithoutFees.AsFloat() - p.FinalWithFees.AsFloat()
	if p.FeeDrag.AsFloat() != want {
		t.Errorf("FeeDrag = %v, want %v", p.FeeDrag, want)
	}
	// And the without-fees trajectory is pure compounding.
	wantFinal := 1000000 * math.Pow(1.09, 30)
	if !approx(p.FinalWithoutFees.AsFloat(), wantFinal) {
		t.Errorf("FinalWithoutFees = %v, want %v", p.FinalWithoutFees, wantFinal)
	}
}

func TestProjection_ExplicitRate(t *testing.T) {
	p := feeSnapshot().NewProjection(5, 8, 5)

	// Out-of-pocket rate excludes the TER: 0.5 + 0.5 = 1%.
	if !p.ExplicitRate.Equal(1.0) {
		t.Errorf("ExplicitRate = %v, want 1.00%%", p.ExplicitRate)
	}
}

func TestProjection_Scenarios(t *testing.T) {
	p := feeSnapshot().NewProjection(20, 8, 5)

	// Blended rate is 1.25%, so all four reductions stay non-negative.
	if len(p.Scenarios) != 4 {
		t.Fatalf("expected 4 scenarios, got %d", len(p.Scenarios))
	}
	for i, sc := range p.Scenarios {
		if sc.Savings.AsFloat() != sc.FinalValue.AsFloat()-p.FinalWithFees.AsFloat() {
			t.Errorf("scenario %d: savings %v != final gap", i, sc.Savings)
		}
		if sc.FinalValue.LessThan(p.FinalWithFees) {
			t.Errorf("scenario %d: reduced rate ended below baseline", i)
		}
	}

	// A deeper cut always saves at least as much.
	for i := 1; i < len(p.Scenarios); i++ {
		if p.Scenarios[i].Savings.LessThan(p.Scenarios[i-1].Savings) {
			t.Errorf("savings not monotonic: %v then %v", p.Scenarios[i-1].Savings, p.Scenarios[i].Savings)
		}
	}
}

func TestProjection_ScenarioSkippedBelowZero(t *testing.T) {
	// A 0.5% total rate cannot be cut by 0.75 or 1.00 points.
	s := &Snapshot{
		Settings: Settings{
			Currency:  "ZAR",
			Platforms: []Platform{{ID: "ee", Fee: PercentFee{Rate: 0.5}}},
		},
		Assets: []Asset{withPlatform(equity("EQ", 1, 1000000, "ZAR"), "ee")},
	}
	p := s.NewProjection(10, 8, 5)

	if len(p.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(p.Scenarios))
	}
	for _, sc := range p.Scenarios {
		if sc.Rate < 0 {
			t.Errorf("scenario rate %v below zero", sc.Rate)
		}
	}
}

func TestProjection_EmptyPortfolio(t *testing.T) {
	s := &Snapshot{Settings: Settings{Currency: "ZAR"}}
	p := s.NewProjection(10, 8, 5)

	if !p.FinalWithFees.IsZero() || !p.FinalWithoutFees.IsZero() || !p.FeeDrag.IsZero() {
		t.Errorf("empty portfolio projection not all zero: %+v", p)
	}
	if p.ExplicitRate != 0 {
		t.Errorf("ExplicitRate = %v, want 0", p.ExplicitRate)
	}
}
