package agent

import "math"

// Pricing is the per-million-token price schedule used to derive a cost
// estimate from usage counters. The numbers come from configuration; the
// arithmetic here is the only thing this package owns.
type Pricing struct {
	InputCostPerMillion  float64
	OutputCostPerMillion float64
}

// Cost prices one call's prompt and completion tokens.
func (p Pricing) Cost(inputTokens, outputTokens int64) float64 {
	in := float64(inputTokens) / 1_000_000 * p.InputCostPerMillion
	out := float64(outputTokens) / 1_000_000 * p.OutputCostPerMillion
	return in + out
}

// roundUSD rounds to 6 decimal places for the wire.
func roundUSD(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
