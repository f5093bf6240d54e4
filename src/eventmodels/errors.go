package eventmodels

import "fmt"

var ErrInvalidWindow = fmt.Errorf("window size must be positive")
var ErrNonPositivePrice = fmt.Errorf("price series contains non-positive prices")
var ErrNoExpirations = fmt.Errorf("no option expirations available")
var ErrNoHistoricalData = fmt.Errorf("no historical price data")
var ErrNoEarningsEvents = fmt.Errorf("no earnings events found")
