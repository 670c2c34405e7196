package finplan

// Settings is the configuration half of a Snapshot: the reporting currency,
// the exchange-rate table, the planning assumptions, and the fee
// configuration. It is produced (and validated) by the surrounding
// application; the engine treats it as read-only.
type Settings struct {
	// Currency is the reporting currency every value is normalized to.
	Currency string `json:"currency"`

	// Rates maps a currency code to the value of 1 unit of that currency in
	// the reporting currency. The reporting currency itself is implicitly 1.
	Rates map[string]float64 `json:"rates,omitempty"`

	// Returns maps an asset class to its assumed annual return in percent.
	Returns map[AssetClass]float64 `json:"returns,omitempty"`

	// Thresholds maps a concentration dimension to its alert threshold in
	// percent of the investible portfolio.
	Thresholds map[Dimension]float64 `json:"thresholds,omitempty"`

	Platforms []Platform `json:"platforms,omitempty"`
	Advisor   AdvisorFee `json:"advisor,omitempty"`

	// MarginalTaxRate is the user's marginal income-tax rate in percent,
	// used by the partial-inclusion capital-gains-tax approximation.
	MarginalTaxRate float64 `json:"marginalTaxRate,omitempty"`
}

// Platform is a broker or investment platform and its fee structure.
type Platform struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Fee  FeeStructure `json:"fee"`
}

// platform returns the configured platform with the given id.
func (s *Settings) platform(id string) (Platform, bool) {
	for _, p := range s.Platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

// Snapshot is a point-in-time view of the user's assets and settings, the
// immutable input to every engine report. It is a stateless calculator: all
// values are computed on the fly from the asset list and settings.
type Snapshot struct {
	// AsOf is the capture date in YYYY-MM-DD form, informational only.
	AsOf     string   `json:"asOf,omitempty"`
	Assets   []Asset  `json:"assets"`
	Settings Settings `json:"settings"`
}

// investibles returns the assets that belong to the investible portfolio.
func (s *Snapshot) investibles() []Asset {
	var out []Asset
	for _, a := range s.Assets {
		if a.Investible() {
			out = append(out, a)
		}
	}
	return out
}

// TotalValue sums the market value of every asset, in reporting currency.
func (s *Snapshot) TotalValue() float64 {
	var total float64
	for _, a := range s.Assets {
		total += s.AssetValue(a)
	}
	return total
}

// InvestibleValue sums the market value of the investible portfolio, in
// reporting currency.
func (s *Snapshot) InvestibleValue() float64 {
	var total float64
	for _, a := range s.Assets {
		if a.Investible() {
			total += s.AssetValue(a)
		}
	}
	return total
}

// ExpectedReturn resolves the expected annual return for an asset, in
// percent. The fallback chain is defined once here: per-asset override if
// present, else the asset-class assumption, else 0.
func (s *Snapshot) ExpectedReturn(a Asset) float64 {
	if a.ExpectedReturn != nil {
		return num(*a.ExpectedReturn)
	}
	return num(s.Settings.Returns[a.Class])
}
