// Package rebalance computes portfolio rebalancing guidance in three linked
// steps, each a pure function of its inputs:
//
//   - Risk-parity targets: inverse-volatility weighting over historical
//     daily prices, so each asset contributes comparably to portfolio risk.
//   - Tax location: a greedy waterfall that shelters the most tax-inefficient
//     asset classes (bonds first, equities last) in the most tax-advantaged
//     accounts (Roth first, taxable last), within account capacities.
//   - Trade generation: converting the dollar targets plus current holdings
//     into a concrete buy/sell list, suppressed while the portfolio drift
//     stays under a configured band to keep transaction costs below the
//     harvested volatility premium.
//
// The package owns no I/O: price histories, account balances and holdings
// are supplied by the caller, and results are structured reports rendered by
// the renderer package. Market data retrieval lives in the yahoo package,
// and the `rbl` command-line tool ties everything together.
package rebalance
