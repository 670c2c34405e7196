package finplan

// WeightedReturn estimates the investible portfolio's expected annual return
// in percent: each asset contributes its expected return weighted by its
// share of the investible value. The per-asset rate is resolved by
// Snapshot.ExpectedReturn, so an asset class absent from the assumptions
// simply contributes 0% rather than failing. An empty or zero-value
// portfolio returns 0.
func (s *Snapshot) WeightedReturn() Percent {
	total := s.InvestibleValue()
	if total == 0 {
		return 0
	}

	var sum float64
	for _, a := range s.Assets {
		if !a.Investible() {
			continue
		}
		sum += s.AssetValue(a) / total * s.ExpectedReturn(a)
	}
	return Percent(sum)
}
