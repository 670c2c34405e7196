package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finplan"
)

// ProjectionMarkdown renders the lifetime fee-impact projection. Yearly rows
// are printed at most every five years to keep a 40-year horizon readable;
// the final year always prints.
func ProjectionMarkdown(p *finplan.Projection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Lifetime Fee Projection over %d years\n\n", p.Years)
	fmt.Fprintf(&b, "Starting value %s, growth %s, inflation %s, out-of-pocket fee rate %s.\n\n",
		p.StartValue, p.GrowthPct, p.Inflation, p.ExplicitRate)

	fmt.Fprintln(&b, "| Year | With Fees | Without Fees | Fee | Cumulative | Cumulative (PV) |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|")
	for _, row := range p.Rows {
		if row.Year%5 != 0 && row.Year != p.Years {
			continue
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			row.Year, row.WithFees, row.WithoutFees, row.Fee, row.CumFees, row.CumFeesPV)
	}

	fmt.Fprint(&b, "\n## Outcome\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Final value with fees | %s |\n", p.FinalWithFees)
	fmt.Fprintf(&b, "| Final value without fees | %s |\n", p.FinalWithoutFees)
	fmt.Fprintf(&b, "| %s | %s |\n", bold("Fee drag"), bold(p.FeeDrag.String()))
	fmt.Fprintf(&b, "| Fees paid (nominal) | %s |\n", p.CumFees)
	fmt.Fprintf(&b, "| Fees paid (today's money) | %s |\n", p.CumFeesPV)

	if len(p.Scenarios) > 0 {
		fmt.Fprint(&b, "\n## What If Fees Were Lower\n\n")
		fmt.Fprintln(&b, "| Reduction | Rate | Final Value | Fees Paid | Savings |")
		fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|")
		for _, sc := range p.Scenarios {
			fmt.Fprintf(&b, "| -%s | %s | %s | %s | %s |\n",
				sc.Reduction, sc.Rate, sc.FinalValue, sc.CumFees, sc.Savings.SignedString())
		}
	}
	return b.String()
}
