package mcpserver

import (
	"fmt"
	"strings"
)

// ParseStockURI splits a stock:// resource URI into a symbol and an
// optional date. Supported forms:
//
//	stock://{symbol}
//	stock://{symbol}/closingdate/{date}
//
// A single trailing slash after the symbol is tolerated. The symbol is
// returned as-is; case handling belongs to the request handler.
func ParseStockURI(uri string) (symbol, date string, err error) {
	rest, ok := strings.CutPrefix(uri, "stock://")
	if !ok {
		return "", "", fmt.Errorf("not a stock:// URI: %q", uri)
	}

	if sym, d, found := strings.Cut(rest, "/closingdate/"); found {
		if sym == "" || d == "" || strings.Contains(sym, "/") || strings.Contains(d, "/") {
			return "", "", fmt.Errorf("malformed stock URI: %q", uri)
		}
		return sym, d, nil
	}

	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", "", fmt.Errorf("malformed stock URI: %q", uri)
	}
	return rest, "", nil
}
