package eventmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMarketCap(t *testing.T) {
	t.Run("suffixed values", func(t *testing.T) {
		assert.Equal(t, 1_500_000_000.0, ParseMarketCap("$1.5B"))
		assert.Equal(t, 500_000_000.0, ParseMarketCap("$500M"))
		assert.Equal(t, 2_300_000_000_000.0, ParseMarketCap("$2.3T"))
	})

	t.Run("plain numerics", func(t *testing.T) {
		assert.Equal(t, 1_234_567.0, ParseMarketCap("$1,234,567"))
		assert.Equal(t, 42.0, ParseMarketCap("42"))
	})

	t.Run("missing values degrade to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ParseMarketCap("-"))
		assert.Equal(t, 0.0, ParseMarketCap(""))
		assert.Equal(t, 0.0, ParseMarketCap("   "))
		assert.Equal(t, 0.0, ParseMarketCap("N/A"))
	})
}
