package finplan

// inclusionRate is the fraction of a capital gain that is included in
// taxable income. This models a partial-inclusion CGT regime as a flat
// approximation: no annual exclusion, no bracket structure.
const inclusionRate = 0.40

// AssetValue returns the market value of an asset in the reporting currency:
// units times current price, converted.
func (s *Snapshot) AssetValue(a Asset) float64 {
	return s.Settings.ToReporting(num(a.Units)*num(a.CurrentPrice), a.Currency)
}

// CostBasis returns the cost basis of an asset in the reporting currency:
// units times cost price, converted.
func (s *Snapshot) CostBasis(a Asset) float64 {
	return s.Settings.ToReporting(num(a.Units)*num(a.CostPrice), a.Currency)
}

// UnrealizedGain returns the unrealized gain of an asset in the reporting
// currency. It is negative for a losing position.
func (s *Snapshot) UnrealizedGain(a Asset) float64 {
	return s.AssetValue(a) - s.CostBasis(a)
}

// GainPercent returns the price appreciation of an asset in percent of its
// cost price. A zero-cost asset reports exactly 0 rather than an infinite
// gain.
func GainPercent(a Asset) Percent {
	cost := num(a.CostPrice)
	if cost == 0 {
		return 0
	}
	return Percent((num(a.CurrentPrice) - cost) / cost * 100)
}

// CapitalGainsTax returns the tax owed on a gain under the partial-inclusion
// approximation: gain times the inclusion rate times the marginal tax rate.
// Losses and zero gains owe nothing.
func CapitalGainsTax(gain, marginalRatePct float64) float64 {
	gain = num(gain)
	if gain <= 0 {
		return 0
	}
	return gain * inclusionRate * num(marginalRatePct) / 100
}

// NetProceeds estimates what selling the asset today would leave after tax.
// Tax-free accounts keep the full value. Retirement-deferred accounts also
// return the full value: their tax falls due at withdrawal and is
// intentionally not modeled here. Taxable accounts pay CGT on the unrealized
// gain.
func (s *Snapshot) NetProceeds(a Asset) float64 {
	value := s.AssetValue(a)
	switch a.Account {
	case TaxFree, RetirementDeferred:
		return value
	default:
		return value - CapitalGainsTax(s.UnrealizedGain(a), s.Settings.MarginalTaxRate)
	}
}

// ValuationReport is the per-asset and whole-portfolio valuation view.
type ValuationReport struct {
	AsOf     string
	Currency string
	Assets   []AssetValuation

	TotalValue      Money
	TotalCost       Money
	TotalGain       Money
	InvestibleValue Money
}

// AssetValuation is the valuation of a single asset, all monetary figures in
// the reporting currency.
type AssetValuation struct {
	ID         string
	Name       string
	Class      AssetClass
	Currency   string
	Investible bool

	Value       Money
	CostBasis   Money
	Gain        Money
	GainPct     Percent
	Tax         Money
	NetProceeds Money
}

// NewValuationReport values every asset in the snapshot and aggregates the
// totals. Assets are reported in snapshot order.
func (s *Snapshot) NewValuationReport() *ValuationReport {
	cur := s.Settings.Currency
	report := &ValuationReport{
		AsOf:     s.AsOf,
		Currency: cur,
	}

	var totalValue, totalCost, investible float64
	for _, a := range s.Assets {
		value := s.AssetValue(a)
		basis := s.CostBasis(a)
		gain := value - basis
		net := s.NetProceeds(a)
		totalValue += value
		totalCost += basis
		if a.Investible() {
			investible += value
		}

		report.Assets = append(report.Assets, AssetValuation{
			ID:          a.ID,
			Name:        a.Name,
			Class:       a.Class,
			Currency:    a.Currency,
			Investible:  a.Investible(),
			Value:       M(value, cur),
			CostBasis:   M(basis, cur),
			Gain:        M(gain, cur),
			GainPct:     GainPercent(a),
			Tax:         M(value-net, cur),
			NetProceeds: M(net, cur),
		})
	}

	report.TotalValue = M(totalValue, cur)
	report.TotalCost = M(totalCost, cur)
	report.TotalGain = M(totalValue-totalCost, cur)
	report.InvestibleValue = M(investible, cur)
	return report
}
