package finplan

import (
	"bytes"
	"strings"
	"testing"
)

const sampleSnapshot = `{
  "version": 2,
  "asOf": "2026-08-31",
  "assets": [
    {"id": "aapl", "name": "Apple", "class": "equity", "currency": "USD",
     "type": "investible", "units": 10, "currentPrice": 185, "costPrice": 120,
     "platformId": "ee", "account": "taxable", "ter": 0.1}
  ],
  "settings": {
    "currency": "ZAR",
    "rates": {"USD": 18.50},
    "returns": {"equity": 12},
    "thresholds": {"asset": 15},
    "platforms": [
      {"id": "ee", "name": "EasyEquities",
       "fee": {"type": "tiered", "tiers": [{"upTo": 500000, "rate": 1}, {"rate": 0.5}]}}
    ],
    "advisor": {"enabled": true, "structure": {"type": "percent", "rate": 1}},
    "marginalTaxRate": 45
  }
}`

func TestDecodeSnapshot(t *testing.T) {
	s, err := DecodeSnapshot(strings.NewReader(sampleSnapshot))
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}

	if len(s.Assets) != 1 || s.Assets[0].ID != "aapl" {
		t.Fatalf("assets = %+v", s.Assets)
	}
	if s.Settings.Currency != "ZAR" || s.Settings.Rates["USD"] != 18.50 {
		t.Errorf("settings = %+v", s.Settings)
	}

	fee, ok := s.Settings.Platforms[0].Fee.(TieredFee)
	if !ok {
		t.Fatalf("platform fee = %T, want TieredFee", s.Settings.Platforms[0].Fee)
	}
	if len(fee.Tiers) != 2 || fee.Tiers[0].UpTo != 500000 {
		t.Errorf("tiers = %+v", fee.Tiers)
	}
	if _, ok := s.Settings.Advisor.Structure.(PercentFee); !ok || !s.Settings.Advisor.Enabled {
		t.Errorf("advisor = %+v", s.Settings.Advisor)
	}
}

func TestDecodeSnapshot_LegacyRates(t *testing.T) {
	// Version-1 documents key rates by "FROM/TO" pairs. Pairs targeting the
	// reporting currency are migrated; others are dropped.
	legacy := `{
	  "version": 1,
	  "assets": [],
	  "settings": {
	    "currency": "ZAR",
	    "rates": {"USD/ZAR": 18.50, "EUR/USD": 1.08}
	  }
	}`

	s, err := DecodeSnapshot(strings.NewReader(legacy))
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if got := s.Settings.Rates["USD"]; got != 18.50 {
		t.Errorf("migrated rate USD = %v, want 18.50", got)
	}
	if _, ok := s.Settings.Rates["EUR/USD"]; ok {
		t.Error("cross pair not dropped by migration")
	}
	if len(s.Settings.Rates) != 1 {
		t.Errorf("rates = %v", s.Settings.Rates)
	}
}

func TestDecodeSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"no reporting currency", `{"version": 2, "assets": [], "settings": {}}`},
		{"bad currency code", `{"version": 2, "assets": [], "settings": {"currency": "ZZZ"}}`},
		{"unknown fee type", `{"version": 2, "assets": [], "settings": {"currency": "ZAR",
		  "platforms": [{"id": "p", "fee": {"type": "mystery"}}]}}`},
		{"negative units", `{"version": 2, "settings": {"currency": "ZAR"},
		  "assets": [{"id": "a", "currency": "ZAR", "units": -1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSnapshot(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestEncodeSnapshot_RoundTrip(t *testing.T) {
	s, err := DecodeSnapshot(strings.NewReader(sampleSnapshot))
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}

	back, err := DecodeSnapshot(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("re-decode error = %v: %s", err, buf.String())
	}
	if back.Settings.Currency != "ZAR" || len(back.Assets) != 1 {
		t.Errorf("round trip lost data: %+v", back)
	}
	if _, ok := back.Settings.Platforms[0].Fee.(TieredFee); !ok {
		t.Errorf("round trip lost the fee structure: %+v", back.Settings.Platforms[0])
	}

	// Canonical form is stable: encoding again yields the same bytes.
	var buf2 bytes.Buffer
	if err := EncodeSnapshot(&buf2, back); err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), buf2.Bytes()) {
		t.Error("canonical encoding is not stable")
	}
}
