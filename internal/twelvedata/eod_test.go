package twelvedata_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockmcp/internal/twelvedata"
)

func TestEOD_PassesSymbolAndDateVerbatim(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eod", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "2024-01-15", r.URL.Query().Get("date"))

		w.Write([]byte(`{
			"symbol": "AAPL",
			"exchange": "NASDAQ",
			"datetime": "2024-01-15",
			"open": "182.16",
			"high": "184.26",
			"low": "180.93",
			"close": "183.63",
			"volume": "65076641"
		}`))
	}))
	defer srv.Close()

	client, err := twelvedata.NewClient("test", twelvedata.WithBaseURL(srv.URL))
	require.NoError(t, err)

	eod, err := client.EOD(t.Context(), "AAPL", "2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", eod.Datetime)
	assert.Equal(t, "183.63", eod.Close.Raw())
	assert.False(t, eod.Empty())
}

func TestEOD_BadRequestBodyStillDecodes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":400,"message":"No data is available on the specified dates","status":"error"}`))
	}))
	defer srv.Close()

	client, err := twelvedata.NewClient("test", twelvedata.WithBaseURL(srv.URL))
	require.NoError(t, err)

	eod, err := client.EOD(t.Context(), "AAPL", "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, 400, eod.Code)
	assert.Equal(t, "No data is available on the specified dates", eod.Message)
}

func TestEODResponse_Empty(t *testing.T) {
	t.Parallel()

	var nilResp *twelvedata.EODResponse
	assert.True(t, nilResp.Empty())
	assert.True(t, (&twelvedata.EODResponse{}).Empty())

	withData := &twelvedata.EODResponse{Symbol: "AAPL"}
	assert.False(t, withData.Empty())

	withError := &twelvedata.EODResponse{Status: "error"}
	assert.False(t, withError.Empty())
}
