package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
)

// QuoteResponse is the payload of the /quote endpoint. Every field is
// optional: the API omits fields per plan and exchange, and error-shaped
// payloads carry only Status/Code/Message.
type QuoteResponse struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Exchange      string `json:"exchange"`
	Currency      string `json:"currency"`
	Datetime      string `json:"datetime"`
	Open          Field  `json:"open"`
	High          Field  `json:"high"`
	Low           Field  `json:"low"`
	Close         Field  `json:"close"`
	Price         Field  `json:"price"`
	Volume        Field  `json:"volume"`
	PreviousClose Field  `json:"previous_close"`
	Change        Field  `json:"change"`
	PercentChange Field  `json:"percent_change"`

	// Error markers, present only on failure payloads.
	Status  string `json:"status,omitempty"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Quote retrieves a real-time quote for one symbol.
func (c *Client) Quote(ctx context.Context, symbol string, opts ...ClientOption) (*QuoteResponse, error) {
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

	url := fmt.Sprintf("%s/quote?%s", override.baseURL, query.Encode())
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

	var quote QuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("decoding quote response: %w", err)
	}
	return &quote, nil
}

func checkStatus(res *http.Response) error {
	switch res.StatusCode {
	case http.StatusOK, http.StatusBadRequest:
		// 400s carry a structured error body (status/code/message) that
		// the caller classifies, so they decode like any other payload.
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("unauthorized")
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limited")
	default:
		return fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}
}
