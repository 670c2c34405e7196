// Package finplan provides the calculation core of a personal
// financial-planning dashboard. It is designed to be local-first and
// side-effect free, so callers keep full control over where data lives and
// when computations run.
//
// The core functionalities include:
//   - Currency Conversion: Normalizing multi-currency holdings into a single
//     reporting currency through a rate table, with a fail-soft 1:1 fallback
//     so a missing rate never blocks a valuation.
//   - Valuation: Market value, cost basis, unrealized gain and
//     capital-gains-tax liability per asset and for the whole portfolio.
//   - Concentration Analysis: Grouping investible assets along several
//     dimensions (asset, class, currency, platform, sector, region, tier)
//     and flagging groups that exceed configured thresholds.
//   - Return Estimation: The portfolio's value-weighted expected annual
//     return from per-asset-class assumptions.
//   - Fee Calculation: Current-year platform fees under percentage, fixed,
//     combined and tiered fee structures, advisor fees, and the informational
//     TER drag.
//   - Lifetime Projection: A year-by-year simulation of the portfolio with
//     and without fees, including present-value fee totals and reduced-rate
//     what-if scenarios.
//
// Every entry point takes an immutable Snapshot (assets plus settings) and
// returns a freshly constructed report: the engine never mutates its inputs,
// never reads shared state, and the same snapshot always yields the same
// result. This package serves as the foundational logic for the `fpl`
// command-line tool.
package finplan
