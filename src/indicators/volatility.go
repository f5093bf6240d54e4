package indicators

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

const (
	DefaultVolatilityWindow = 30
	DefaultTradingPeriods   = 252
)

// YangZhang calculates the annualized Yang-Zhang volatility estimate over
// the most recent window of daily bars. It combines overnight gap variance,
// close-to-close variance and the Rogers-Satchell intra-bar term, which makes
// it considerably more accurate around earnings gaps than a plain
// close-to-close estimate.
//
// A series shorter than the window shrinks the effective window to the
// series length. Fewer than two usable return observations yields 0.0 with
// no error: conservative "could not evaluate", not a failure.
func YangZhang(candles []eventmodels.Candle, window int, tradingPeriods int) (float64, error) {
	if window <= 0 {
		return 0, fmt.Errorf("YangZhang: %w: %d", eventmodels.ErrInvalidWindow, window)
	}

	logOC, logCC, rs, err := logReturnComponents(candles)
	if err != nil {
		return 0, fmt.Errorf("YangZhang: %w", err)
	}

	w := window
	if len(logOC) < w {
		w = len(logOC)
	}

	if w < 2 {
		return 0, nil
	}

	var openVol, closeVol, windowRS float64
	for i := len(logOC) - w; i < len(logOC); i++ {
		openVol += logOC[i] * logOC[i]
		closeVol += logCC[i] * logCC[i]
		windowRS += rs[i]
	}

	divisor := 1.0 / (float64(w) - 1.0)
	openVol *= divisor
	closeVol *= divisor
	windowRS *= divisor

	k := 0.34 / (1.34 + (float64(w)+1.0)/(float64(w)-1.0))

	return math.Sqrt(openVol+k*closeVol+(1-k)*windowRS) * math.Sqrt(float64(tradingPeriods)), nil
}

// HistoricalVolatility is the simple close-to-close estimate: annualized
// sample standard deviation of daily log returns. Fallback when full OHLC
// data is unavailable.
func HistoricalVolatility(candles []eventmodels.Candle, window int, tradingPeriods int) (float64, error) {
	if window <= 0 {
		return 0, fmt.Errorf("HistoricalVolatility: %w: %d", eventmodels.ErrInvalidWindow, window)
	}

	logReturns := make([]float64, 0, len(candles))
	for i := 1; i < len(candles); i++ {
		if candles[i].Close <= 0 || candles[i-1].Close <= 0 {
			return 0, fmt.Errorf("HistoricalVolatility: %w", eventmodels.ErrNonPositivePrice)
		}

		logReturns = append(logReturns, math.Log(candles[i].Close/candles[i-1].Close))
	}

	w := window
	if len(logReturns) < w {
		w = len(logReturns)
	}

	if w < 2 {
		return 0, nil
	}

	sd, err := stats.StandardDeviationSample(logReturns[len(logReturns)-w:])
	if err != nil {
		return 0, fmt.Errorf("HistoricalVolatility: failed to calculate standard deviation: %v", err)
	}

	return sd * math.Sqrt(float64(tradingPeriods)), nil
}

// Parkinson is the high/low range estimate. More efficient than
// close-to-close but blind to overnight gaps.
func Parkinson(candles []eventmodels.Candle, window int, tradingPeriods int) (float64, error) {
	if window <= 0 {
		return 0, fmt.Errorf("Parkinson: %w: %d", eventmodels.ErrInvalidWindow, window)
	}

	hlRatios := make([]float64, 0, len(candles))
	for _, c := range candles {
		if c.High <= 0 || c.Low <= 0 {
			return 0, fmt.Errorf("Parkinson: %w", eventmodels.ErrNonPositivePrice)
		}

		r := math.Log(c.High / c.Low)
		hlRatios = append(hlRatios, r*r)
	}

	w := window
	if len(hlRatios) < w {
		w = len(hlRatios)
	}

	if w < 2 {
		return 0, nil
	}

	mean, err := stats.Mean(hlRatios[len(hlRatios)-w:])
	if err != nil {
		return 0, fmt.Errorf("Parkinson: failed to calculate mean: %v", err)
	}

	constant := 1.0 / (4.0 * math.Log(2.0))

	return math.Sqrt(constant*mean) * math.Sqrt(float64(tradingPeriods)), nil
}

// logReturnComponents computes, per bar after the first, the overnight
// open/previous-close return, the close/previous-close return and the
// Rogers-Satchell term RS = logHO*(logHO-logCO) + logLO*(logLO-logCO).
func logReturnComponents(candles []eventmodels.Candle) (logOC, logCC, rs []float64, err error) {
	for i := 1; i < len(candles); i++ {
		c := candles[i]
		prev := candles[i-1]

		if c.Open <= 0 || c.High <= 0 || c.Low <= 0 || c.Close <= 0 || prev.Close <= 0 {
			return nil, nil, nil, eventmodels.ErrNonPositivePrice
		}

		logHO := math.Log(c.High / c.Open)
		logLO := math.Log(c.Low / c.Open)
		logCO := math.Log(c.Close / c.Open)

		logOC = append(logOC, math.Log(c.Open/prev.Close))
		logCC = append(logCC, math.Log(c.Close/prev.Close))
		rs = append(rs, logHO*(logHO-logCO)+logLO*(logLO-logCO))
	}

	return logOC, logCC, rs, nil
}
