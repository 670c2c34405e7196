package finplan

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file persists a snapshot as a single human-readable JSON document,
// meant to live in a private git repo next to the user's other records.
//
// The document carries a schema version. Version 1 documents keyed the
// exchange-rate table by "FROM/TO" pair strings; since version 2 it is keyed
// by the foreign currency code alone, with the reporting currency as the
// implicit target. Migration happens here, once, at decode time: the engine
// only ever sees the canonical code-keyed map.

// snapshotVersion is the schema version written by EncodeSnapshot.
const snapshotVersion = 2

const attrVersion = "version"

// DecodeSnapshot reads a snapshot document, migrating legacy shapes to the
// canonical one and validating currency codes at the boundary.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot: %w", err)
	}

	// Probe the raw document for its schema version before the typed parse.
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("snapshot is not a correct json document: %w", err)
	}
	version := 1.0
	if jval, err := jsonpath.Get("$."+attrVersion, jobj); err == nil {
		if v, ok := jval.(float64); ok {
			version = v
		}
	}

	var jsnap struct {
		AsOf     string  `json:"asOf"`
		Assets   []Asset `json:"assets"`
		Settings struct {
			Currency        string                 `json:"currency"`
			Rates           map[string]float64     `json:"rates"`
			Returns         map[AssetClass]float64 `json:"returns"`
			Thresholds      map[Dimension]float64  `json:"thresholds"`
			Platforms       []jplatform            `json:"platforms"`
			Advisor         jadvisor               `json:"advisor"`
			MarginalTaxRate float64                `json:"marginalTaxRate"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &jsnap); err != nil {
		return nil, fmt.Errorf("format error in snapshot: %w", err)
	}

	s := &Snapshot{
		AsOf:   jsnap.AsOf,
		Assets: jsnap.Assets,
		Settings: Settings{
			Currency:        jsnap.Settings.Currency,
			Rates:           jsnap.Settings.Rates,
			Returns:         jsnap.Settings.Returns,
			Thresholds:      jsnap.Settings.Thresholds,
			MarginalTaxRate: jsnap.Settings.MarginalTaxRate,
		},
	}
	for _, jp := range jsnap.Settings.Platforms {
		p, err := jp.platform()
		if err != nil {
			return nil, err
		}
		s.Settings.Platforms = append(s.Settings.Platforms, p)
	}
	adv, err := jsnap.Settings.Advisor.advisor()
	if err != nil {
		return nil, err
	}
	s.Settings.Advisor = adv

	if version < snapshotVersion {
		s.Settings.Rates = migrateRates(s.Settings.Rates, s.Settings.Currency)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// migrateRates converts a version-1 pair-keyed rate table ("USD/ZAR": 18.5)
// to the canonical code-keyed form. Pairs that do not end in the reporting
// currency cannot be expressed in the canonical table and are dropped with a
// warning.
func migrateRates(legacy map[string]float64, reporting string) map[string]float64 {
	rates := make(map[string]float64, len(legacy))
	for key, rate := range legacy {
		from, to, found := strings.Cut(key, "/")
		if !found {
			// Already code-keyed, keep as is.
			rates[key] = rate
			continue
		}
		if to != reporting {
			log.Printf("warning: dropping legacy rate %q: target is not the reporting currency %s", key, reporting)
			continue
		}
		rates[from] = rate
	}
	return rates
}

// EncodeSnapshot writes the snapshot in its canonical form: current schema
// version, stable field order, code-keyed rates.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	var jw jsonObjectWriter
	jw.Append(attrVersion, snapshotVersion)
	jw.Optional("asOf", s.AsOf)
	jw.Append("assets", s.Assets)
	jw.Append("settings", encodableSettings(s.Settings))

	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// encodableSettings orders the settings fields and wraps the fee structures
// with their type tags.
func encodableSettings(s Settings) json.Marshaler {
	var w jsonObjectWriter
	w.Append("currency", s.Currency)
	w.Optional("rates", s.Rates)
	w.Optional("returns", s.Returns)
	w.Optional("thresholds", s.Thresholds)
	if len(s.Platforms) > 0 {
		platforms := make([]json.Marshaler, 0, len(s.Platforms))
		for _, p := range s.Platforms {
			platforms = append(platforms, encodablePlatform(p))
		}
		w.Append("platforms", platforms)
	}
	if s.Advisor.Enabled || s.Advisor.Structure != nil {
		var a jsonObjectWriter
		a.Optional("enabled", s.Advisor.Enabled)
		if s.Advisor.Structure != nil {
			a.Append("structure", encodableFee(s.Advisor.Structure))
		}
		w.Append("advisor", &a)
	}
	w.Optional("marginalTaxRate", s.MarginalTaxRate)
	return &w
}

func encodablePlatform(p Platform) json.Marshaler {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Optional("name", p.Name)
	if p.Fee != nil {
		w.Append("fee", encodableFee(p.Fee))
	}
	return &w
}

// Fee structure type tags.
const (
	feePercent  = "percent"
	feeFixed    = "fixed"
	feeCombined = "combined"
	feeTiered   = "tiered"
)

// encodableFee wraps a fee structure with its type tag.
func encodableFee(f FeeStructure) json.Marshaler {
	var w jsonObjectWriter
	switch v := f.(type) {
	case PercentFee:
		w.Append("type", feePercent)
		w.Append("rate", v.Rate)
	case FixedFee:
		w.Append("type", feeFixed)
		w.Append("amount", v.Amount)
		w.Optional("currency", v.Currency)
		w.Optional("frequency", v.Frequency)
	case CombinedFee:
		w.Append("type", feeCombined)
		w.Append("rate", v.Rate)
		w.Append("amount", v.Amount)
		w.Optional("currency", v.Currency)
		w.Optional("frequency", v.Frequency)
	case TieredFee:
		w.Append("type", feeTiered)
		w.Append("tiers", v.Tiers)
	}
	return &w
}

// jfee is the parse shape for a tagged fee structure.
type jfee struct {
	Type      string    `json:"type"`
	Rate      float64   `json:"rate"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Frequency Frequency `json:"frequency"`
	Tiers     []FeeTier `json:"tiers"`
}

func (j jfee) fee() (FeeStructure, error) {
	switch j.Type {
	case feePercent:
		return PercentFee{Rate: j.Rate}, nil
	case feeFixed:
		return FixedFee{Amount: j.Amount, Currency: j.Currency, Frequency: j.Frequency}, nil
	case feeCombined:
		return CombinedFee{Rate: j.Rate, Amount: j.Amount, Currency: j.Currency, Frequency: j.Frequency}, nil
	case feeTiered:
		return TieredFee{Tiers: j.Tiers}, nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown fee structure type %q", j.Type)
	}
}

type jplatform struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Fee  *jfee  `json:"fee"`
}

func (j jplatform) platform() (Platform, error) {
	p := Platform{ID: j.ID, Name: j.Name}
	if j.Fee != nil {
		fee, err := j.Fee.fee()
		if err != nil {
			return p, fmt.Errorf("format error in platform %q: %w", j.ID, err)
		}
		p.Fee = fee
	}
	return p, nil
}

type jadvisor struct {
	Enabled   bool  `json:"enabled"`
	Structure *jfee `json:"structure"`
}

func (j jadvisor) advisor() (AdvisorFee, error) {
	adv := AdvisorFee{Enabled: j.Enabled}
	if j.Structure != nil {
		fee, err := j.Structure.fee()
		if err != nil {
			return adv, fmt.Errorf("format error in advisor fee: %w", err)
		}
		adv.Structure = fee
	}
	return adv, nil
}
