package finplan

import "math"

// reductions are the what-if fee-rate cuts explored by every projection, in
// percentage points off the blended explicit-plus-TER rate.
var reductions = []float64{0.25, 0.50, 0.75, 1.00}

// ProjectionYear is one simulated year.
type ProjectionYear struct {
	Year        int // 1-based offset from the snapshot
	WithFees    Money
	WithoutFees Money
	Fee         Money // that year's fee, nominal
	FeePV       Money // that year's fee discounted by inflation
	CumFees     Money
	CumFeesPV   Money
}

// Scenario is an independent re-run of the projection with the blended fee
// rate reduced by a flat number of percentage points.
type Scenario struct {
	Reduction  Percent // points taken off the blended rate
	Rate       Percent // resulting flat yearly rate
	FinalValue Money
	CumFees    Money
	// Savings is the final value gained versus the baseline with-fees run.
	Savings Money
}

// Projection is the multi-decade fee-impact simulation: parallel with-fees
// and without-fees trajectories, cumulative fee totals nominal and in
// today's money, and reduced-rate what-if scenarios.
//
// The fee model is deliberately coarse: the three year-0 rates (platform,
// advisor, TER) are blended once and re-applied to the growing aggregate
// every year, rather than simulating fees per underlying holding. That is
// the product's intended behavior, kept as is; see the projection docs topic.
type Projection struct {
	Currency  string
	Years     int
	GrowthPct Percent
	Inflation Percent

	StartValue Money
	Rows       []ProjectionYear

	FinalWithFees    Money
	FinalWithoutFees Money
	// FeeDrag is exactly FinalWithoutFees minus FinalWithFees.
	FeeDrag   Money
	CumFees   Money
	CumFeesPV Money
	// ExplicitRate is the year-0 out-of-pocket fee rate on the portfolio.
	ExplicitRate Percent

	Scenarios []Scenario
}

// NewProjection simulates the investible portfolio over the given horizon at
// a fixed nominal growth rate, with fees seeded from the current-year fee
// report. Present values discount by the inflation rate.
func (s *Snapshot) NewProjection(years int, growthPct, inflationPct float64) *Projection {
	fees := s.NewFeeReport()
	cur := s.Settings.Currency

	growthPct = num(growthPct)
	inflationPct = num(inflationPct)
	start := fees.investible

	p := &Projection{
		Currency:   cur,
		Years:      years,
		GrowthPct:  Percent(growthPct),
		Inflation:  Percent(inflationPct),
		StartValue: M(start, cur),
	}

	// Year-0 blended rates, each fee bucket over the year-0 value. They stay
	// fixed for the whole horizon while the base they apply to grows.
	var platformRate, advisorRate, terRate float64
	if start > 0 {
		platformRate = fees.platformFees / start
		advisorRate = fees.advisorFees / start
		terRate = fees.terDrag / start
		p.ExplicitRate = Percent((fees.platformFees + fees.advisorFees) / start * 100)
	}
	feeRate := platformRate + advisorRate + terRate

	growth := 1 + growthPct/100
	discount := 1 + inflationPct/100

	withFees, withoutFees := start, start
	var cumFees, cumFeesPV float64
	for t := 1; t <= years; t++ {
		withFees *= growth
		withoutFees *= growth

		fee := withFees * feeRate
		withFees -= fee
		feePV := fee / math.Pow(discount, float64(t))
		cumFees += fee
		cumFeesPV += feePV

		p.Rows = append(p.Rows, ProjectionYear{
			Year:        t,
			WithFees:    M(withFees, cur),
			WithoutFees: M(withoutFees, cur),
			Fee:         M(fee, cur),
			FeePV:       M(feePV, cur),
			CumFees:     M(cumFees, cur),
			CumFeesPV:   M(cumFeesPV, cur),
		})
	}

	p.FinalWithFees = M(withFees, cur)
	p.FinalWithoutFees = M(withoutFees, cur)
	p.FeeDrag = M(withoutFees-withFees, cur)
	p.CumFees = M(cumFees, cur)
	p.CumFeesPV = M(cumFeesPV, cur)

	// What-if runs: each one is a full independent simulation on a single
	// flat reduced rate, not an increment on the baseline.
	for _, cut := range reductions {
		reduced := feeRate - cut/100
		if reduced < 0 {
			continue
		}
		final, cum := simulateFlat(start, years, growth, reduced)
		p.Scenarios = append(p.Scenarios, Scenario{
			Reduction:  Percent(cut),
			Rate:       Percent(reduced * 100),
			FinalValue: M(final, cur),
			CumFees:    M(cum, cur),
			Savings:    M(final-withFees, cur),
		})
	}
	return p
}

// simulateFlat runs a single trajectory for the full horizon at a flat
// yearly fee rate, returning the final value and cumulative fees.
func simulateFlat(start float64, years int, growth, feeRate float64) (final, cumFees float64) {
	value := start
	for t := 1; t <= years; t++ {
		value *= growth
		fee := value * feeRate
		value -= fee
		cumFees += fee
	}
	return value, cumFees
}
