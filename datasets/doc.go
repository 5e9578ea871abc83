// SPDX-License-Identifier: MIT

// Package datasets provides small, reproducible time series for tests,
// examples and the command-line tool.
//
// 🚀 What is in here?
//
//   - Airline: the classic Box–Jenkins monthly airline passengers series
//     (144 observations, 1949-01 … 1960-12), decoded from embedded YAML.
//   - Pulse, Chirp: deterministic synthetic signals over a positional index.
//   - OHLC: deterministic open/high/low/close candles over a daily index.
//
// Determinism policy:
//   - Same (n, seed, options) ⇒ identical output.
//   - WithRand shares one stream across calls; otherwise each call seeds its
//     own source from seed.
//
// Every returned container is freshly allocated and passes the default mtype
// checks for its type.
package datasets
