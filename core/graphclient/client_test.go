package graphclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/prediqt/sdk-go/core/types"
)

// recordedRequest is what the fake endpoint saw.
type recordedRequest struct {
	method      string
	contentType string
	query       string
}

// newTestServer answers every request with status and body, recording the
// last request.
func newTestServer(t *testing.T, status int, body string) (*Client, *recordedRequest) {
	t.Helper()
	seen := &recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.method = r.Method
		seen.contentType = r.Header.Get("Content-Type")
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		seen.query = req.Query

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, WithHTTPClient(server.Client()), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return client, seen
}

func TestNewClient(t *testing.T) {
	_, err := NewClient("")
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	_, err = NewClient("not a url")
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	client, err := NewClient("https://graph.prediqt.example/graphql")
	require.NoError(t, err)
	assert.Equal(t, "https://graph.prediqt.example/graphql", client.URL())
}

func TestChainInfoRoundTrip(t *testing.T) {
	client, seen := newTestServer(t, http.StatusOK, `{"data":{"chain_info":{"blocks_behind":12}}}`)

	info, err := client.GetChainInfo(context.Background())
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, int64(12), info.BlocksBehind)

	assert.Equal(t, http.MethodPost, seen.method)
	assert.Equal(t, "application/json", seen.contentType)
	assert.Contains(t, seen.query, "chain_info {")
	assert.Contains(t, seen.query, "blocks_behind")
}

func TestTransportFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "non-2xx status",
			status: http.StatusBadGateway,
			body:   "upstream down",
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
				assert.Equal(t, "upstream down", statusErr.Body)
			},
		},
		{
			name:   "malformed JSON",
			status: http.StatusOK,
			body:   `{"data": {"chain_info": `,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "failed to decode graphql response")
			},
		},
		{
			name:   "trailing data after the envelope",
			status: http.StatusOK,
			body:   `{"data":{"chain_info":{"blocks_behind":1}}} garbage`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "failed to decode graphql response")
			},
		},
		{
			name:   "second envelope after the first",
			status: http.StatusOK,
			body:   `{"data":{"chain_info":{"blocks_behind":1}}}{"data":{}}`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "failed to decode graphql response")
			},
		},
		{
			name:   "root field of the wrong shape",
			status: http.StatusOK,
			body:   `{"data":{"chain_info":[1,2]}}`,
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "failed to decode chain_info")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, tt.status, tt.body)
			info, err := client.GetChainInfo(context.Background())
			require.Error(t, err)
			assert.Nil(t, info)
			assert.False(t, errors.Is(err, types.ErrInvalidArgument))
			tt.check(t, err)
		})
	}
}

func TestEmptyResults(t *testing.T) {
	t.Run("null market", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusOK, `{"data":{"market_by_id":null}}`)
		market, err := client.GetMarket(context.Background(), 99)
		require.NoError(t, err)
		assert.Nil(t, market)
	})

	t.Run("empty list", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusOK, `{"data":{"markets":[]}}`)
		markets, err := client.ListMarkets(context.Background(), types.ListMarketsInput{Count: 10})
		require.NoError(t, err)
		assert.NotNil(t, markets)
		assert.Empty(t, markets)
	})

	t.Run("errors array is not interpreted", func(t *testing.T) {
		client, _ := newTestServer(t, http.StatusOK,
			`{"data":null,"errors":[{"message":"Cannot query field \"nope\"","locations":[{"line":2,"column":3}]}]}`)

		info, err := client.GetChainInfo(context.Background())
		require.NoError(t, err)
		assert.Nil(t, info)

		envelope, err := client.Execute(context.Background(), "query { nope }")
		require.NoError(t, err)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, `Cannot query field "nope"`, envelope.Errors[0].Message)
	})
}

func TestGetShareholders(t *testing.T) {
	client, seen := newTestServer(t, http.StatusOK, `{"data":{"market_by_id":{"shareholders":[
		{"market":{"id":4},"shareholder":{"name":"bob"},"quantity":12,"symbol":"YES","updated_at":{"num":100,"id":"abc","time":"2019-10-01T00:00:00"}}
	]}}}`)

	holders, err := client.GetShareholders(context.Background(), 4, "bob")
	require.NoError(t, err)
	require.Len(t, holders, 1)
	assert.Equal(t, "bob", holders[0].Shareholder.Name)
	assert.Equal(t, int64(4), holders[0].Market.ID)
	assert.Equal(t, float64(12), holders[0].Quantity)
	assert.Contains(t, seen.query, `shareholders(shareholder: "bob")`)
}

func TestListMarketsDecodes(t *testing.T) {
	client, seen := newTestServer(t, http.StatusOK, `{"data":{"markets":[
		{"id":7,"creator":{"name":"alice"},"resolver":{"name":"oracle"},"state":"APPROVED",
		 "ipfs":{"hash":"Qm1","title":"Will it rain?","image_url":"","category":"weather"},
		 "last_trade":{"yes_price":0.41},"volume":{"eos":120.5},"order_book":[]}
	]}}`)

	markets, err := client.ListMarkets(context.Background(), types.ListMarketsInput{Count: 1, Creator: "alice"})
	require.NoError(t, err)
	require.Len(t, markets, 1)

	m := markets[0]
	assert.Equal(t, int64(7), m.ID)
	assert.Equal(t, types.MarketStateApproved, m.State)
	assert.Equal(t, "Will it rain?", m.Ipfs.Title)
	require.NotNil(t, m.LastTrade)
	assert.InDelta(t, 0.41, m.LastTrade.YesPrice, 1e-9)
	assert.True(t, strings.Contains(seen.query, `creator: "alice"`))
}

func TestInvalidInputSkipsNetwork(t *testing.T) {
	client, seen := newTestServer(t, http.StatusOK, `{"data":{}}`)

	_, err := client.ListMarkets(context.Background(), types.ListMarketsInput{
		Filter: &types.FilterParam{ParamName: "bad name", ParamValue: "x"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
	assert.Empty(t, seen.method)
}
