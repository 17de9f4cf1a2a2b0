package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingCost(t *testing.T) {
	p := Pricing{InputCostPerMillion: 5.0, OutputCostPerMillion: 15.0}

	assert.InDelta(t, 0.0008, p.Cost(100, 20), 1e-12)
	assert.Zero(t, p.Cost(0, 0))

	// 1M input tokens cost exactly the per-million input rate.
	assert.InDelta(t, 5.0, p.Cost(1_000_000, 0), 1e-12)
}

func TestRoundUSD(t *testing.T) {
	assert.Equal(t, 0.000123, roundUSD(0.0001234999))
	assert.Equal(t, 0.000124, roundUSD(0.0001235001))
	assert.Equal(t, 1.0, roundUSD(1.0000000001))
}
