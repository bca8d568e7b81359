package twelvedata_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stockmcp/internal/twelvedata"
)

func okResponse(t *testing.T, body any) *http.Response {
	t.Helper()
	buffer := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buffer).Encode(body))
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(buffer),
	}
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	// Assert: a valid key should return a client.
	client, err := twelvedata.NewClient("test")
	require.NoErrorf(t, err, "unexpected error: %v", err)
	require.NotNilf(t, client, "unexpected nil client")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock http client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return okResponse(t, map[string]any{}), nil
		}).
		Times(1)

	// Arrange: create a new client with a custom HTTP client.
	client, err := twelvedata.NewClient("test", twelvedata.WithHTTPClient(httpClient))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: call Quote with the custom HTTP client.
	client.Quote(t.Context(), "AAPL")
}

func TestWithBaseURL(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock http client
	httpClient := NewMockHTTPClient(ctrl)

	// Arrange: define a base url
	baseURL := "http://localhost:8080"

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Truef(t, strings.HasPrefix(req.URL.String(), baseURL), "expected url to start with base url, received: %s", req.URL.String())
			return okResponse(t, map[string]any{}), nil
		}).
		Times(1)

	// Arrange: create a new client.
	client, err := twelvedata.NewClient("test", twelvedata.WithHTTPClient(httpClient), twelvedata.WithBaseURL(baseURL))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: call Quote with the overridden base URL.
	client.Quote(t.Context(), "AAPL")
}

func TestWithHeader(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock http client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "bar", req.Header.Get("foo"))
			return okResponse(t, map[string]any{}), nil
		}).
		Times(1)

	// Arrange: create a new client with a custom header.
	client, err := twelvedata.NewClient("test", twelvedata.WithHTTPClient(httpClient), twelvedata.WithHeader(http.Header{
		"foo": []string{"bar"},
	}))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: call Quote with the custom header.
	client.Quote(t.Context(), "AAPL")
}

func TestAPIKeyInQuery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "secret", req.URL.Query().Get("apikey"))
			return okResponse(t, map[string]any{}), nil
		}).
		Times(1)

	client, err := twelvedata.NewClient("secret", twelvedata.WithHTTPClient(httpClient))
	require.NoError(t, err)

	client.Quote(t.Context(), "AAPL")
}
