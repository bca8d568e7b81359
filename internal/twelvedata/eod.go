package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
)

// EODResponse is the payload of the /eod endpoint: a single end-of-day
// bar, or an error-shaped payload with Status/Code/Message.
type EODResponse struct {
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
	Datetime string `json:"datetime"`
	Open     Field  `json:"open"`
	High     Field  `json:"high"`
	Low      Field  `json:"low"`
	Close    Field  `json:"close"`
	Volume   Field  `json:"volume"`

	Status  string `json:"status,omitempty"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Empty reports whether the payload carries neither data nor an error
// marker, i.e. the API returned an empty object.
func (r *EODResponse) Empty() bool {
	if r == nil {
		return true
	}
	return r.Symbol == "" && r.Datetime == "" && !r.Close.IsSet() &&
		!r.Open.IsSet() && r.Status == "" && r.Code == 0 && r.Message == ""
}

// EOD retrieves the end-of-day bar for one symbol on one date
// (YYYY-MM-DD). Date validation is the caller's job; the string is
// passed through verbatim.
func (c *Client) EOD(ctx context.Context, symbol, date string, opts ...ClientOption) (*EODResponse, error) {
	var override = &Client{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
		query:      c.query,
	}
	for _, opt := range opts {
		opt(override)
	}

	query := maps.Clone(override.query)
	query.Add("symbol", symbol)
	query.Add("date", date)

	url := fmt.Sprintf("%s/eod?%s", override.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = override.header

	res, err := override.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if err := checkStatus(res); err != nil {
		return nil, err
	}

	var eod EODResponse
	if err := json.NewDecoder(res.Body).Decode(&eod); err != nil {
		return nil, fmt.Errorf("decoding eod response: %w", err)
	}
	return &eod, nil
}
