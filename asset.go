package finplan

import "math"

// AssetClass categorizes an asset for expected-return lookups and
// concentration grouping.
type AssetClass string

const (
	ClassEquity      AssetClass = "equity"
	ClassETF         AssetClass = "etf"
	ClassBond        AssetClass = "bond"
	ClassCash        AssetClass = "cash"
	ClassProperty    AssetClass = "property"
	ClassCrypto      AssetClass = "crypto"
	ClassCommodity   AssetClass = "commodity"
	ClassRetirement  AssetClass = "retirement"
	ClassAlternative AssetClass = "alternative"
)

// AssetType separates holdings the engine analyzes from lifestyle assets
// (primary residence, vehicles) that are tracked but never treated as part of
// the investible portfolio.
type AssetType string

const (
	Investible AssetType = "investible"
	Lifestyle  AssetType = "lifestyle"
)

// AccountType is the tax treatment of the account holding an asset.
type AccountType string

const (
	// TaxFree accounts owe no tax on disposal.
	TaxFree AccountType = "tax-free"
	// Taxable accounts owe capital gains tax on the unrealized gain.
	Taxable AccountType = "taxable"
	// RetirementDeferred accounts are taxed at withdrawal, outside this model.
	RetirementDeferred AccountType = "retirement-deferred"
)

// Asset is a single holding as captured by the surrounding application.
// The engine only ever reads assets, it never mutates them.
type Asset struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Class    AssetClass `json:"class"`
	Currency string     `json:"currency"`
	Region   string     `json:"region,omitempty"`
	Sector   string     `json:"sector,omitempty"`
	Tier     string     `json:"tier,omitempty"`
	Type     AssetType  `json:"type"`

	Units        float64 `json:"units"`
	CurrentPrice float64 `json:"currentPrice"`
	CostPrice    float64 `json:"costPrice"`

	PlatformID string      `json:"platformId,omitempty"`
	Account    AccountType `json:"account,omitempty"`

	// TER is the fund's total expense ratio in percent. It is already
	// embedded in the unit price and tracked only as an informational drag.
	TER           float64 `json:"ter,omitempty"`
	DividendYield float64 `json:"dividendYield,omitempty"`
	InterestYield float64 `json:"interestYield,omitempty"`

	// ExpectedReturn overrides the asset-class assumption when set, in
	// percent per year. See Snapshot.ExpectedReturn for the resolution rule.
	ExpectedReturn *float64 `json:"expectedReturn,omitempty"`

	// NoAdvisorFee opts this asset out of percentage-based advisor fees.
	NoAdvisorFee bool `json:"noAdvisorFee,omitempty"`
}

// Investible reports whether the asset belongs to the investible portfolio.
func (a Asset) Investible() bool { return a.Type != Lifestyle }

// num sanitizes a numeric input: the upstream validation layer is supposed to
// reject bad shapes, but a NaN or infinite value that slips through is
// treated as 0 rather than poisoning every aggregate downstream.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
