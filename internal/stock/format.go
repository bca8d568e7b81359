package stock

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stockmcp/internal/twelvedata"
)

const placeholder = "N/A"

var separator = strings.Repeat("=", 40)

// Formatter renders provider payloads as fixed-layout text blocks. It is
// total: missing or malformed fields degrade to the placeholder, never an
// error. The zero value stamps blocks with the wall clock; tests set
// Clock to pin the timestamp.
type Formatter struct {
	Clock func() time.Time
}

func (f Formatter) timestamp() string {
	now := time.Now
	if f.Clock != nil {
		now = f.Clock
	}
	return now().Format(time.DateTime)
}

// Current renders a real-time quote with change information.
func (f Formatter) Current(q *twelvedata.QuoteResponse, symbol string) string {
	if q == nil {
		q = &twelvedata.QuoteResponse{}
	}

	price := q.Close.Or(q.Price.Or(placeholder))

	// Absent change and percent default to zero, so a quote without
	// movement data still renders "+0.00 (+0.00%)".
	changeRaw := q.Change.Or("0")
	percentRaw := q.PercentChange.Or("0")

	changeStr := changeRaw
	percentStr := percentRaw
	direction := ""
	changeVal, errC := decimal.NewFromString(changeRaw)
	percentVal, errP := decimal.NewFromString(percentRaw)
	if errC == nil && errP == nil {
		changeStr = signedFixed(changeVal)
		percentStr = signedFixed(percentVal) + "%"
		if changeVal.IsNegative() {
			direction = "📉"
		} else {
			direction = "📈"
		}
	}

	return fmt.Sprintf(
		"Stock Price Data: %s\n"+
			"%s\n"+
			"Current Price: $%s\n"+
			"Change: %s (%s) %s\n"+
			"Previous Close: $%s\n"+
			"Day High: $%s\n"+
			"Day Low: $%s\n"+
			"Volume: %s\n"+
			"Exchange: %s\n"+
			"Retrieved at: %s\n",
		symbol,
		separator,
		price,
		changeStr, percentStr, direction,
		q.PreviousClose.Or(placeholder),
		q.High.Or(placeholder),
		q.Low.Or(placeholder),
		q.Volume.Or(placeholder),
		orString(q.Exchange, placeholder),
		f.timestamp(),
	)
}

// Historical renders a single end-of-day bar. Values are passed through
// as received; date falls back to the requested one when the payload
// does not echo its own.
func (f Formatter) Historical(bar *twelvedata.EODResponse, symbol, date string) string {
	if bar == nil {
		bar = &twelvedata.EODResponse{}
	}

	return fmt.Sprintf(
		"Stock Historical Data (EOD): %s\n"+
			"%s\n"+
			"Date: %s\n"+
			"Opening Price: $%s\n"+
			"Closing Price: $%s\n"+
			"Day High: $%s\n"+
			"Day Low: $%s\n"+
			"Volume: %s\n"+
			"Retrieved at: %s\n",
		symbol,
		separator,
		orString(bar.Datetime, date),
		bar.Open.Or(placeholder),
		bar.Close.Or(placeholder),
		bar.High.Or(placeholder),
		bar.Low.Or(placeholder),
		bar.Volume.Or(placeholder),
		f.timestamp(),
	)
}

// signedFixed renders a value to two decimals with an explicit sign for
// non-negative values.
func signedFixed(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if !d.IsNegative() {
		s = "+" + s
	}
	return s
}

func orString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
