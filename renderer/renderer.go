// Package renderer turns finplan reports into markdown documents suitable
// for a terminal renderer or for saving next to the snapshot.
package renderer

import (
	"fmt"
	"io"
)

// section conditionally prints a header only when rows actually follow, so
// empty report sections disappear instead of leaving a dangling title.
type section struct {
	header  func(io.Writer)
	printed bool
}

func (s *section) printHeader(w io.Writer) {
	if s.printed {
		return
	}
	s.printed = true
	if s.header != nil {
		s.header(w)
	}
}

// bold wraps a cell for total rows.
func bold(s string) string { return fmt.Sprintf("**%s**", s) }
