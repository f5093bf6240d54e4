package eventmodels

import "strings"

type StockSymbol string

func (s StockSymbol) String() string {
	return strings.ToUpper(string(s))
}

// IsForeignOrOTC reports whether the symbol looks like a foreign ordinary or
// OTC listing. NASDAQ's calendar feed marks these with a trailing F or Y.
func (s StockSymbol) IsForeignOrOTC() bool {
	sym := s.String()
	return strings.HasSuffix(sym, "F") || strings.HasSuffix(sym, "Y")
}

func NewStockSymbol(s string) StockSymbol {
	return StockSymbol(strings.ToUpper(s))
}
