package eventmodels

import (
	"fmt"
	"time"
)

// Candle is one daily OHLCV bar. All volatility estimates are derived from
// ordered slices of these.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

func (c Candle) Validate() error {
	if c.Open <= 0 || c.High <= 0 || c.Low <= 0 || c.Close <= 0 {
		return fmt.Errorf("Candle: Validate: prices must be positive, got O=%v H=%v L=%v C=%v", c.Open, c.High, c.Low, c.Close)
	}

	if c.Volume < 0 {
		return fmt.Errorf("Candle: Validate: volume must be non-negative, got %v", c.Volume)
	}

	return nil
}

// AverageVolume returns the mean share volume over the most recent n bars.
// Fewer than n bars averages whatever is available; an empty slice returns 0.
func AverageVolume(candles []Candle, n int) float64 {
	if len(candles) == 0 || n <= 0 {
		return 0
	}

	start := len(candles) - n
	if start < 0 {
		start = 0
	}

	sum := 0.0
	for _, c := range candles[start:] {
		sum += c.Volume
	}

	return sum / float64(len(candles)-start)
}
