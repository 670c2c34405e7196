package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finplan"
)

// FeesMarkdown renders the current-year fee breakdown.
func FeesMarkdown(r *finplan.FeeReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Yearly Fees (%s)\n\n", r.Currency)

	if len(r.Platforms) > 0 {
		fmt.Fprint(&b, "## Platform Fees\n\n")
		fmt.Fprintln(&b, "| Platform | Holdings | Fee |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, p := range r.Platforms {
			name := p.Name
			if name == "" {
				name = p.ID
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", name, p.Value, p.Fee)
		}
		fmt.Fprintf(&b, "| %s | | %s |\n\n", bold("Total"), bold(r.PlatformTotal.String()))
	}

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Platform fees | %s |\n", r.PlatformTotal)
	fmt.Fprintf(&b, "| Advisor fee | %s |\n", r.Advisor)
	fmt.Fprintf(&b, "| %s | %s |\n", bold("Out of pocket"), bold(r.Explicit.String()))
	fmt.Fprintf(&b, "| TER drag (embedded) | %s |\n", r.TERDrag)
	fmt.Fprintf(&b, "| Average TER | %s |\n", r.AvgTER)
	fmt.Fprintf(&b, "| %s | %s |\n", bold("Total drag"), bold(r.TotalWithTER.String()))
	fmt.Fprintf(&b, "\nOut-of-pocket fees are %s of the %s investible portfolio per year.\n",
		r.ExplicitRate, r.InvestibleValue)

	return b.String()
}
