package stock

import (
	"context"

	"stockmcp/internal/twelvedata"
)

// MarketData is the slice of the Twelve Data client the handler needs.
// Injected so tests can substitute a double for the live API.
type MarketData interface {
	Quote(ctx context.Context, symbol string, opts ...twelvedata.ClientOption) (*twelvedata.QuoteResponse, error)
	EOD(ctx context.Context, symbol, date string, opts ...twelvedata.ClientOption) (*twelvedata.EODResponse, error)
}
