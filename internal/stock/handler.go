package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Handler answers the two stock questions the server exposes. It holds
// no state: each call validates its input, makes at most one upstream
// request, and returns text. Failures never escape as errors; every
// outcome is a string on the response channel, distinguished by prefix
// ("Error: ", "Warning: ", "API Error: ", "No data available: ").
type Handler struct {
	Data MarketData
	Log  logrus.FieldLogger
	// Formatter renders successful payloads; its zero value is usable.
	Formatter Formatter
}

func NewHandler(data MarketData, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{Data: data, Log: log}
}

// FetchCurrent returns the formatted current quote for symbol. The
// symbol is uppercased for the upstream call; empty or whitespace
// symbols are passed through for the provider to reject.
func (h *Handler) FetchCurrent(ctx context.Context, symbol string) string {
	h.Log.Infof("Fetching current price for %s", symbol)

	quote, err := h.Data.Quote(ctx, strings.ToUpper(symbol))
	if err != nil {
		msg := fmt.Sprintf("Error fetching stock data for %s: %v", symbol, err)
		h.Log.Error(msg)
		return "Error: " + msg
	}

	return h.Formatter.Current(quote, strings.ToUpper(symbol))
}

// FetchHistorical returns the formatted end-of-day bar for symbol on
// date (YYYY-MM-DD). Bad dates and weekends are answered locally,
// without an upstream call.
func (h *Handler) FetchHistorical(ctx context.Context, symbol, date string) string {
	h.Log.Infof("Fetching EOD data for %s on %s", symbol, date)

	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return fmt.Sprintf("Error: Invalid date format '%s'. Use YYYY-MM-DD", date)
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return fmt.Sprintf("Warning: %s is a weekend. Stock markets are typically closed. Try a weekday date.", date)
	}

	eod, err := h.Data.EOD(ctx, strings.ToUpper(symbol), date)
	if err != nil {
		msg := fmt.Sprintf("Error fetching EOD data for %s on %s: %v", symbol, date, err)
		h.Log.Error(msg)
		return "Error: " + msg
	}

	// Classification order matters: an error marker wins over a missing
	// close, and an entirely empty payload wins over both.
	switch {
	case eod.Empty():
		return fmt.Sprintf("Error: No EOD data returned for %s on %s", symbol, date)
	case eod.Status == "error":
		msg := eod.Message
		if msg == "" {
			msg = "Unknown API error"
		}
		return "API Error: " + msg
	case eod.Code == 400:
		msg := eod.Message
		if msg == "" {
			msg = "No data available for this date"
		}
		return "No data available: " + msg
	case !eod.Close.IsSet():
		return fmt.Sprintf("No closing price data available for %s on %s. Markets may have been closed.", symbol, date)
	}

	return h.Formatter.Historical(eod, strings.ToUpper(symbol), date)
}
