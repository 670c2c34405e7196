package finplan

import "log"

// Frequency is how often a fixed fee is charged.
type Frequency string

const (
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Annual    Frequency = "annual"
)

// perYear returns the number of charges per year. An unknown frequency is
// treated as annual.
func (f Frequency) perYear() float64 {
	switch f {
	case Monthly:
		return 12
	case Quarterly:
		return 4
	default:
		return 1
	}
}

// FeeStructure is the sealed set of platform fee variants. The single
// dispatch point is platformFee; adding a variant without extending that
// switch logs a warning instead of silently charging nothing.
type FeeStructure interface {
	feeStructure()
}

// PercentFee charges a flat annual percentage of the asset value.
type PercentFee struct {
	Rate float64 `json:"rate"`
}

// FixedFee charges a periodic amount in a given currency, independent of the
// value held on the platform.
type FixedFee struct {
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Frequency Frequency `json:"frequency"`
}

// CombinedFee charges a percentage of value plus a fixed periodic amount.
type CombinedFee struct {
	Rate      float64   `json:"rate"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Frequency Frequency `json:"frequency"`
}

// FeeTier is one band of a tiered fee: the rate applies to the slice of
// value between the previous tier's upper bound and this one. UpTo of 0
// means unbounded and must come last.
type FeeTier struct {
	UpTo float64 `json:"upTo,omitempty"`
	Rate float64 `json:"rate"`
}

// TieredFee charges different rates on different value bands of the same
// holding, applied marginally like tax brackets, never as an average rate.
type TieredFee struct {
	Tiers []FeeTier `json:"tiers"`
}

func (PercentFee) feeStructure()  {}
func (FixedFee) feeStructure()    {}
func (CombinedFee) feeStructure() {}
func (TieredFee) feeStructure()   {}

// AdvisorFee configures the advisor-fee model: either a percentage of the
// eligible investible value or a fixed yearly amount. Structure must be a
// PercentFee or a FixedFee.
type AdvisorFee struct {
	Enabled   bool         `json:"enabled,omitempty"`
	Structure FeeStructure `json:"structure,omitempty"`
}

// annualFixed normalizes a periodic amount to a yearly figure in the
// reporting currency.
func (s *Settings) annualFixed(amount float64, currency string, freq Frequency) float64 {
	return s.ToReporting(num(amount)*freq.perYear(), currency)
}

// tieredFee walks the ordered bands, charging each band's rate on the slice
// of value that falls inside it.
func tieredFee(value float64, tiers []FeeTier) float64 {
	remaining := num(value)
	var fee, lower float64
	for _, t := range tiers {
		if remaining <= 0 {
			break
		}
		slice := remaining
		if t.UpTo > 0 {
			if width := t.UpTo - lower; width < slice {
				slice = width
			}
			lower = t.UpTo
		}
		if slice <= 0 {
			continue
		}
		fee += slice * num(t.Rate) / 100
		remaining -= slice
	}
	return fee
}

// valueFee is the value-dependent part of a platform fee for one asset.
// The fixed component of FixedFee and CombinedFee is charged once per
// platform, not per asset, and is handled by fixedFee.
func valueFee(value float64, fee FeeStructure) float64 {
	switch f := fee.(type) {
	case PercentFee:
		return value * num(f.Rate) / 100
	case CombinedFee:
		return value * num(f.Rate) / 100
	case TieredFee:
		return tieredFee(value, f.Tiers)
	case FixedFee:
		return 0
	default:
		log.Printf("warning: unknown fee structure %T, charging nothing", fee)
		return 0
	}
}

// fixedFee is the value-independent yearly part of a platform fee, in the
// reporting currency.
func (s *Settings) fixedFee(fee FeeStructure) float64 {
	switch f := fee.(type) {
	case FixedFee:
		return s.annualFixed(f.Amount, f.Currency, f.Frequency)
	case CombinedFee:
		return s.annualFixed(f.Amount, f.Currency, f.Frequency)
	default:
		return 0
	}
}

// PlatformFees aggregates one platform's holdings and its yearly fee.
type PlatformFees struct {
	ID    string
	Name  string
	Value Money // investible value held on the platform
	Fee   Money // yearly fee in reporting currency
}

// FeeReport is the current-year fee picture: per-platform fees, the advisor
// fee, and the informational TER drag, all in the reporting currency.
type FeeReport struct {
	Currency  string
	Platforms []PlatformFees

	PlatformTotal Money
	Advisor       Money
	// Explicit is what the user actually pays out of pocket:
	// platform fees plus advisor fees.
	Explicit Money
	// TERDrag is the yearly cost already embedded in fund prices. It is
	// never charged on top, only reported for comparison.
	TERDrag Money
	AvgTER  Percent
	// TotalWithTER is the total yearly drag on returns: explicit fees plus
	// the embedded TER drag.
	TotalWithTER Money

	InvestibleValue Money
	// ExplicitRate is Explicit as a percentage of the investible value.
	ExplicitRate Percent

	// raw figures kept for the projection seed
	platformFees float64
	advisorFees  float64
	terDrag      float64
	investible   float64
}

// NewFeeReport computes the current-year fees. Only investible assets whose
// platform reference matches a configured platform contribute to platform
// fees; assets with no platform or an unmatched reference are silently
// skipped (surfacing those is a UX diagnostic, not an engine error).
func (s *Snapshot) NewFeeReport() *FeeReport {
	cur := s.Settings.Currency
	report := &FeeReport{Currency: cur}

	// Platform fees: value-dependent part per asset, fixed part once per
	// platform with at least one holding.
	type agg struct {
		value float64
		fee   float64
		seen  bool
	}
	byPlatform := make(map[string]*agg)
	var advisorBase float64

	for _, a := range s.Assets {
		if !a.Investible() {
			continue
		}
		value := s.AssetValue(a)
		report.investible += value
		report.terDrag += value * num(a.TER) / 100
		if !a.NoAdvisorFee {
			advisorBase += value
		}

		p, ok := s.Settings.platform(a.PlatformID)
		if !ok {
			continue
		}
		g := byPlatform[p.ID]
		if g == nil {
			g = &agg{}
			byPlatform[p.ID] = g
		}
		g.value += value
		g.fee += valueFee(value, p.Fee)
		g.seen = true
	}

	// Aggregate in configured platform order for a stable report.
	for _, p := range s.Settings.Platforms {
		g := byPlatform[p.ID]
		if g == nil || !g.seen {
			continue
		}
		g.fee += s.Settings.fixedFee(p.Fee)
		report.platformFees += g.fee
		report.Platforms = append(report.Platforms, PlatformFees{
			ID:    p.ID,
			Name:  p.Name,
			Value: M(g.value, cur),
			Fee:   M(g.fee, cur),
		})
	}

	report.advisorFees = s.advisorFee(advisorBase)

	explicit := report.platformFees + report.advisorFees
	report.PlatformTotal = M(report.platformFees, cur)
	report.Advisor = M(report.advisorFees, cur)
	report.Explicit = M(explicit, cur)
	report.TERDrag = M(report.terDrag, cur)
	report.TotalWithTER = M(explicit+report.terDrag, cur)
	report.InvestibleValue = M(report.investible, cur)
	if report.investible > 0 {
		report.AvgTER = Percent(report.terDrag / report.investible * 100)
		report.ExplicitRate = Percent(explicit / report.investible * 100)
	}
	return report
}

// advisorFee computes the yearly advisor fee on the eligible base value.
func (s *Snapshot) advisorFee(base float64) float64 {
	adv := s.Settings.Advisor
	if !adv.Enabled || adv.Structure == nil {
		return 0
	}
	switch f := adv.Structure.(type) {
	case PercentFee:
		return base * num(f.Rate) / 100
	case FixedFee:
		return s.Settings.annualFixed(f.Amount, f.Currency, f.Frequency)
	default:
		log.Printf("warning: unsupported advisor fee structure %T, charging nothing", adv.Structure)
		return 0
	}
}
