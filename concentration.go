package finplan

import "sort"

// Dimension is an axis along which the investible portfolio is grouped when
// looking for concentration risk.
type Dimension string

const (
	DimAsset    Dimension = "asset"
	DimClass    Dimension = "class"
	DimCurrency Dimension = "currency"
	DimPlatform Dimension = "platform"
	DimSector   Dimension = "sector"
	DimRegion   Dimension = "region"
	DimTier     Dimension = "tier"
)

// Dimensions lists every grouping axis in report order.
var Dimensions = []Dimension{DimAsset, DimClass, DimCurrency, DimPlatform, DimSector, DimRegion, DimTier}

// Uncategorized is the bucket for assets with no value for a dimension.
const Uncategorized = "Uncategorized"

// Severity grades a concentration risk.
type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// highFactor is the per-dimension multiple of the threshold above which a
// risk is graded high instead of medium. A single asset or platform holding
// everything is a sharper problem than a tilt toward one asset class or
// currency, so those dimensions escalate sooner relative to their (lower)
// thresholds.
var highFactor = map[Dimension]float64{
	DimAsset:    1.5,
	DimPlatform: 1.5,
	DimClass:    1.2,
	DimCurrency: 1.2,
	DimSector:   1.25,
	DimRegion:   1.25,
	DimTier:     1.25,
}

// ConcentrationRisk flags one group on one dimension that exceeds its
// configured threshold.
type ConcentrationRisk struct {
	Dimension Dimension
	Group     string
	Value     Money
	Percent   Percent // share of the investible portfolio
	Threshold Percent
	Severity  Severity
}

// ConcentrationReport is the outcome of grouping the investible portfolio
// along every dimension and comparing each group against its threshold.
type ConcentrationReport struct {
	Currency        string
	InvestibleValue Money
	Risks           []ConcentrationRisk
}

// key extracts an asset's grouping key for a dimension. An empty key falls
// in the Uncategorized bucket.
func (s *Snapshot) key(a Asset, dim Dimension) string {
	var k string
	switch dim {
	case DimAsset:
		k = a.Name
		if k == "" {
			k = a.ID
		}
	case DimClass:
		k = string(a.Class)
	case DimCurrency:
		k = a.Currency
	case DimPlatform:
		if p, ok := s.Settings.platform(a.PlatformID); ok {
			k = p.Name
		}
	case DimSector:
		k = a.Sector
	case DimRegion:
		k = a.Region
	case DimTier:
		k = a.Tier
	}
	if k == "" {
		return Uncategorized
	}
	return k
}

// NewConcentrationReport groups the investible assets along every dimension,
// computes each group's share of the investible portfolio, and emits a risk
// for every group whose share exceeds the dimension's threshold. Lifestyle
// assets and assets with zero value never contribute. An empty portfolio
// produces an empty report.
func (s *Snapshot) NewConcentrationReport() *ConcentrationReport {
	cur := s.Settings.Currency
	report := &ConcentrationReport{Currency: cur}

	total := s.InvestibleValue()
	report.InvestibleValue = M(total, cur)
	if total <= 0 {
		return report
	}

	for _, dim := range Dimensions {
		threshold, ok := s.Settings.Thresholds[dim]
		if !ok {
			continue
		}
		for _, g := range s.groupValues(dim) {
			pct := g.value / total * 100
			if pct <= threshold {
				continue
			}
			severity := SeverityMedium
			if pct > threshold*highFactor[dim] {
				severity = SeverityHigh
			}
			report.Risks = append(report.Risks, ConcentrationRisk{
				Dimension: dim,
				Group:     g.name,
				Value:     M(g.value, cur),
				Percent:   Percent(pct),
				Threshold: Percent(threshold),
				Severity:  severity,
			})
		}
	}
	return report
}

type group struct {
	name  string
	value float64
}

// groupValues sums the converted value of the investible assets per group on
// one dimension, sorted by descending value then name for a stable report.
func (s *Snapshot) groupValues(dim Dimension) []group {
	values := make(map[string]float64)
	for _, a := range s.Assets {
		if !a.Investible() {
			continue
		}
		v := s.AssetValue(a)
		if v == 0 {
			continue
		}
		values[s.key(a, dim)] += v
	}

	groups := make([]group, 0, len(values))
	for name, value := range values {
		groups = append(groups, group{name: name, value: value})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].value != groups[j].value {
			return groups[i].value > groups[j].value
		}
		return groups[i].name < groups[j].name
	})
	return groups
}
