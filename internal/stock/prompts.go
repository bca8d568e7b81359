package stock

import (
	"fmt"
	"strings"
)

// Prompt text shown to MCP clients. Pure templating, no upstream calls.

func CurrentPricePrompt(symbol string) string {
	sym := strings.ToUpper(symbol)
	return fmt.Sprintf(`
To get current stock price information for %[1]s:

Use the resource: stock://%[1]s/
Or use the tool: get_current_stock_price with symbol parameter

This will provide you with:
- Current stock price
- Price change from previous close
- Percentage change
- Day's high and low prices
- Trading volume
- Exchange information

Example usage:
- For Apple stock: stock://AAPL/ or get_current_stock_price(symbol="AAPL")
- For Microsoft stock: stock://MSFT/ or get_current_stock_price(symbol="MSFT")
- For Google stock: stock://GOOGL/ or get_current_stock_price(symbol="GOOGL")

The data is fetched in real-time from the Twelve Data API and includes
comprehensive market information with change indicators.
`, sym)
}

func HistoricalPricePrompt(symbol, date string) string {
	sym := strings.ToUpper(symbol)
	return fmt.Sprintf(`
To get historical End-of-Day (EOD) stock price information for %[1]s on %[2]s:

Use the resource: stock://%[1]s/closingdate/%[2]s
Or use the tool: get_historical_stock_price with symbol and date parameters

This will provide you with:
- Opening price for the day
- Closing price for the day
- Day's high and low prices
- Trading volume
- Actual date of the data

Example usage:
- For Apple stock on Jan 15, 2024: stock://AAPL/closingdate/2024-01-15 or get_historical_stock_price(symbol="AAPL", date="2024-01-15")
- For Microsoft stock on Dec 31, 2023: stock://MSFT/closingdate/2023-12-31 or get_historical_stock_price(symbol="MSFT", date="2023-12-31")

Important notes:
- Date must be in YYYY-MM-DD format
- Weekend dates will return a warning (markets are typically closed)
- Historical data is sourced from Twelve Data's EOD endpoint
- Data may not be available for very recent dates or market holidays
`, sym, date)
}

func UsageGuidePrompt() string {
	return `
Stock MCP Server Usage Guide
============================

This server provides resources and tools for stock market data:

1. CURRENT STOCK PRICES
Resource Pattern: stock://{SYMBOL}/
Tool: get_current_stock_price(symbol)

Examples:
- stock://AAPL/     (Apple Inc.) or get_current_stock_price(symbol="AAPL")
- stock://MSFT/     (Microsoft Corporation) or get_current_stock_price(symbol="MSFT")
- stock://GOOGL/    (Alphabet Inc.) or get_current_stock_price(symbol="GOOGL")
- stock://TSLA/     (Tesla Inc.) or get_current_stock_price(symbol="TSLA")
- stock://NVDA/     (NVIDIA Corporation) or get_current_stock_price(symbol="NVDA")

Returns: Current price, change, percentage change, day high/low, volume, exchange

2. HISTORICAL STOCK PRICES (End-of-Day Data)
Resource Pattern: stock://{SYMBOL}/closingdate/{YYYY-MM-DD}
Tool: get_historical_stock_price(symbol, date)

Examples:
- stock://AAPL/closingdate/2024-01-15 or get_historical_stock_price(symbol="AAPL", date="2024-01-15")
- stock://MSFT/closingdate/2023-12-31 or get_historical_stock_price(symbol="MSFT", date="2023-12-31")
- stock://GOOGL/closingdate/2024-03-01 or get_historical_stock_price(symbol="GOOGL", date="2024-03-01")

Returns: Open, close, high, low prices and volume for the specified date

SYMBOL REQUIREMENTS:
- Use standard stock ticker symbols (typically 1-5 characters)
- Symbols are case-insensitive (AAPL = aapl = Aapl)
- Must be valid symbols traded on supported exchanges

DATE REQUIREMENTS:
- Format: YYYY-MM-DD (e.g., 2024-01-15)
- Weekends will return warnings as markets are typically closed
- Very recent dates may not have data available yet
- Historical data availability depends on the stock and exchange

ERROR HANDLING:
- Invalid symbols will return error messages
- Invalid date formats will be rejected
- Missing data scenarios are handled gracefully

DATA SOURCE:
- All data is sourced from the Twelve Data API
- Real-time quotes for current prices
- End-of-Day (EOD) data for historical prices
`
}
