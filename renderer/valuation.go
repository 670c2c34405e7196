package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finplan"
)

// ValuationMarkdown renders the per-asset valuation table.
func ValuationMarkdown(r *finplan.ValuationReport) string {
	var b strings.Builder

	if r.AsOf != "" {
		fmt.Fprintf(&b, "# Valuation on %s (%s)\n\n", r.AsOf, r.Currency)
	} else {
		fmt.Fprintf(&b, "# Valuation (%s)\n\n", r.Currency)
	}

	fmt.Fprintln(&b, "| Asset | Class | Value | Cost | Gain | Gain % | Tax | Net |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")

	for _, a := range r.Assets {
		name := a.Name
		if name == "" {
			name = a.ID
		}
		if !a.Investible {
			name += " (lifestyle)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			name,
			a.Class,
			a.Value,
			a.CostBasis,
			a.Gain.SignedString(),
			a.GainPct.SignedString(),
			a.Tax,
			a.NetProceeds,
		)
	}
	fmt.Fprintf(&b, "| %s | | %s | %s | %s | | | |\n",
		bold("Total"),
		bold(r.TotalValue.String()),
		bold(r.TotalCost.String()),
		bold(r.TotalGain.SignedString()),
	)

	fmt.Fprintf(&b, "\nInvestible portfolio: %s\n", r.InvestibleValue)
	return b.String()
}
