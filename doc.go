// Package financebrain tracks personal finances (accounts, investment
// holdings, transactions) as flat key-value records in a schema-less
// document graph, and derives rollup metrics by scanning that graph.
//
// The core functionalities include:
//   - Property Codec: bidirectional mapping between typed entities and
//     flat string-keyed property maps, with lenient parsing, defaulting,
//     and dual key-alias acceptance for records written by older encoders.
//   - Record Scanner: best-effort retrieval of all records carrying a
//     given `type` tag from an injected graph store.
//   - Aggregator: pure reductions over scanned records producing a
//     financial summary (net worth, liquidity, burn rate, cash flow,
//     available credit) and categorical breakdowns (asset allocation,
//     spending by category).
//
// The durable state lives in the graph store (see the graph package):
// entities are transient computation artifacts, decoded from a record on
// read and encoded into one just before write, never cached or mutated
// in place.
//
// This package serves as the foundational logic for the `fin`
// command-line tool. There is no double-entry bookkeeping and no
// currency conversion: currency is a display label only, and every
// summary is recomputed fresh from the current record state.
package financebrain
