package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/finplan"
)

// dimLabel gives each grouping axis its display name.
var dimLabel = map[finplan.Dimension]string{
	finplan.DimAsset:    "Single Asset",
	finplan.DimClass:    "Asset Class",
	finplan.DimCurrency: "Currency",
	finplan.DimPlatform: "Platform",
	finplan.DimSector:   "Sector",
	finplan.DimRegion:   "Region",
	finplan.DimTier:     "Portfolio Tier",
}

// RisksMarkdown renders the concentration risks grouped by dimension.
func RisksMarkdown(r *finplan.ConcentrationReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Concentration Risks\n\n")
	fmt.Fprintf(&b, "Investible portfolio: %s\n\n", r.InvestibleValue)

	if len(r.Risks) == 0 {
		fmt.Fprintln(&b, "No group exceeds its configured threshold.")
		return b.String()
	}

	for _, dim := range finplan.Dimensions {
		sec := &section{header: func(w io.Writer) {
			fmt.Fprintf(w, "## %s\n\n", dimLabel[dim])
			fmt.Fprintln(w, "| Group | Value | Share | Threshold | Severity |")
			fmt.Fprintln(w, "|:---|---:|---:|---:|:---|")
		}}
		for _, risk := range r.Risks {
			if risk.Dimension != dim {
				continue
			}
			sec.printHeader(&b)
			severity := string(risk.Severity)
			if risk.Severity == finplan.SeverityHigh {
				severity = bold(severity)
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				risk.Group, risk.Value, risk.Percent, risk.Threshold, severity)
		}
		if sec.printed {
			fmt.Fprintln(&b)
		}
	}
	return b.String()
}
