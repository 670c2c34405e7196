package finplan

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
)

// ValidateCurrency checks a currency code against the currency registry.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// Validate checks the snapshot boundary invariants and returns an error with
// all failures. Shape and range validation belongs to the surrounding
// application; this only guards what the engine cannot absorb fail-soft: a
// usable reporting currency and recognizable currency codes.
func (s *Snapshot) Validate() (err error) {
	if s.Settings.Currency == "" {
		err = errors.Join(err, fmt.Errorf("reporting currency is not set"))
	} else if e := ValidateCurrency(s.Settings.Currency); e != nil {
		err = errors.Join(err, fmt.Errorf("invalid reporting currency: %w", e))
	}

	for _, a := range s.Assets {
		if a.Currency != "" {
			if e := ValidateCurrency(a.Currency); e != nil {
				err = errors.Join(err, fmt.Errorf("asset %q: %w", a.ID, e))
			}
		}
		if a.Units < 0 {
			err = errors.Join(err, fmt.Errorf("asset %q: negative units", a.ID))
		}
	}

	for _, p := range s.Settings.Platforms {
		if p.ID == "" {
			err = errors.Join(err, fmt.Errorf("platform with empty id"))
		}
	}
	return err
}
