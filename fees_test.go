package finplan

import "testing"

func TestFeeReport_PercentPlatform(t *testing.T) {
	s := &Snapshot{
		Settings: Settings{
			Currency:  "ZAR",
			Platforms: []Platform{{ID: "ee", Name: "EasyEquities", Fee: PercentFee{Rate: 0.5}}},
		},
		Assets: []Asset{withPlatform(equity("EQ", 1, 1000000, "ZAR"), "ee")},
	}

	report := s.NewFeeReport()
	// 1,000,000 at 0.5% per year: 5,000.
	if !report.PlatformTotal.Equal(ZAR(5000)) {
		t.Errorf("PlatformTotal = %v, want %v", report.PlatformTotal, ZAR(5000))
	}
	if len(report.Platforms) != 1 || !report.Platforms[0].Fee.Equal(ZAR(5000)) {
		t.Errorf("per-platform breakdown = %v", report.Platforms)
	}
}

func TestTieredFee(t *testing.T) {
	tiers := []FeeTier{
		{UpTo: 500000, Rate: 1.0},
		{Rate: 0.5}, // unbounded
	}

	// 500,000 x 1% + 300,000 x 0.5% = 6,500: marginal, not average.
	if got := tieredFee(800000, tiers); !approx(got, 6500) {
		t.Errorf("tieredFee(800000) = %v, want 6500", got)
	}
	// Value inside the first band never reaches the second rate.
	if got := tieredFee(400000, tiers); !approx(got, 4000) {
		t.Errorf("tieredFee(400000) = %v, want 4000", got)
	}
	if got := tieredFee(0, tiers); got != 0 {
		t.Errorf("tieredFee(0) = %v, want 0", got)
	}
}

func TestFeeReport_FixedAndCombined(t *testing.T) {
	s := &Snapshot{
		Settings: Settings{
			Currency: "ZAR",
			Rates:    map[string]float64{"USD": 18.50},
			Platforms: []Platform{
				{ID: "ib", Name: "Broker", Fee: FixedFee{Amount: 10, Currency: "USD", Frequency: Monthly}},
				{ID: "co", Name: "Combined", Fee: CombinedFee{Rate: 0.2, Amount: 100, Currency: "ZAR", Frequency: Quarterly}},
			},
		},
		Assets: []Asset{
			withPlatform(equity("A", 1, 50000, "ZAR"), "ib"),
			withPlatform(equity("B", 1, 50000, "ZAR"), "ib"),
			withPlatform(equity("C", 1, 100000, "ZAR"), "co"),
		},
	}

	report := s.NewFeeReport()

	// The fixed fee is charged once per platform, not per asset:
	// 10 USD x 12 x 18.50 = 2220 ZAR.
	if !report.Platforms[0].Fee.Equal(ZAR(2220)) {
		t.Errorf("fixed platform fee = %v, want %v", report.Platforms[0].Fee, ZAR(2220))
	}
	// Combined: 100,000 x 0.2% + 100 x 4 = 200 + 400 = 600.
	if !report.Platforms[1].Fee.Equal(ZAR(600)) {
		t.Errorf("combined platform fee = %v, want %v", report.Platforms[1].Fee, ZAR(600))
	}
}

func TestFeeReport_UnmatchedPlatformSkipped(t *testing.T) {
	s := &Snapshot{
		Settings: Settings{
			Currency:  "ZAR",
			Platforms: []Platform{{ID: "ee", Fee: PercentFee{Rate: 1}}},
		},
		Assets: []Asset{
			withPlatform(equity("A", 1, 1000, "ZAR"), "ee"),
			withPlatform(equity("B", 1, 9000, "ZAR"), "ghost"), // not configured
			equity("C", 1, 5000, "ZAR"),                        // no platform at all
		},
	}

	report := s.NewFeeReport()
	if !report.PlatformTotal.Equal(ZAR(10)) {
		t.Errorf("PlatformTotal = %v, want %v (only the matched asset)", report.PlatformTotal, ZAR(10))
	}
	// Skipped assets still count toward the investible value.
	if !report.InvestibleValue.Equal(ZAR(15000)) {
		t.Errorf("InvestibleValue = %v, want %v", report.InvestibleValue, ZAR(15000))
	}
}

func TestFeeReport_Advisor(t *testing.T) {
	s := &Snapshot{
		Settings: Settings{
			Currency: "ZAR",
			Advisor:  AdvisorFee{Enabled: true, Structure: PercentFee{Rate: 1}},
		},
		Assets: []Asset{
			equity("A", 1, 600000, "ZAR"),
			optOut(equity("B", 1, 400000, "ZAR")),
		},
	}

	report := s.NewFeeReport()
	// Only the eligible 600,000 pays the 1% advisor fee.
	if !report.Advisor.Equal(ZAR(6000)) {
		t.Errorf("Advisor = %v, want %v", report.Advisor, ZAR(6000))
	}

	s.Settings.Advisor.Enabled = false
	if report := s.NewFeeReport(); !report.Advisor.IsZero() {
		t.Errorf("disabled advisor fee = %v, want 0", report.Advisor)
	}

	// Fixed advisor fees are independent of portfolio size.
	s.Settings.Advisor = AdvisorFee{Enabled: true, Structure: FixedFee{Amount: 500, Currency: "ZAR", Frequency: Monthly}}
	if report := s.NewFeeReport(); !report.Advisor.Equal(ZAR(6000)) {
		t.Errorf("fixed advisor fee = %v, want %v", report.Advisor, ZAR(6000))
	}
}

func TestFeeReport_TERAndTotals(t *testing.T) {
	s := &Snapshot{
		Settings: Settings{
			Currency:  "ZAR",
			Platforms: []Platform{{ID: "ee", Fee: PercentFee{Rate: 0.5}}},
			Advisor:   AdvisorFee{Enabled: true, Structure: PercentFee{Rate: 0.5}},
		},
		Assets: []Asset{
			withTER(withPlatform(equity("A", 1, 600000, "ZAR"), "ee"), 0.25),
			withTER(withPlatform(equity("B", 1, 400000, "ZAR"), "ee"), 1.00),
		},
	}

	report := s.NewFeeReport()

	// TER drag: 600,000 x 0.25% + 400,000 x 1% = 1500 + 4000 = 5500.
	if !report.TERDrag.Equal(ZAR(5500)) {
		t.Errorf("TERDrag = %v, want %v", report.TERDrag, ZAR(5500))
	}
	// Value-weighted average TER: 5500/1,000,000 = 0.55%.
	if !report.AvgTER.Equal(0.55) {
		t.Errorf("AvgTER = %v, want 0.55%%", report.AvgTER)
	}
	// Explicit = platform 5000 + advisor 5000; the TER is never charged on
	// top, only reported.
	if !report.Explicit.Equal(ZAR(10000)) {
		t.Errorf("Explicit = %v, want %v", report.Explicit, ZAR(10000))
	}
	if !report.TotalWithTER.Equal(ZAR(15500)) {
		t.Errorf("TotalWithTER = %v, want %v", report.TotalWithTER, ZAR(15500))
	}
	if !report.ExplicitRate.Equal(1.0) {
		t.Errorf("ExplicitRate = %v, want 1.00%%", report.ExplicitRate)
	}
}

// test fixture helpers

func withPlatform(a Asset, id string) Asset { a.PlatformID = id; return a }
func withTER(a Asset, ter float64) Asset    { a.TER = ter; return a }
func optOut(a Asset) Asset                  { a.NoAdvisorFee = true; return a }
