package prediqtclient

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prediqt/sdk-go/core/types"
)

func TestReadTableRequest(t *testing.T) {
	transport := &mockTransport{}
	client := newTestClient(t, transport)

	resp, err := client.ReadTable(context.Background(), "prediqtpedia", "12", "shares", types.TableQuery{
		Limit:      5,
		LowerBound: "alice",
		UpperBound: "bob",
		TableKey:   "byholder",
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.Rows)
	assert.Empty(t, resp.Rows)

	require.Len(t, transport.tableReads, 1)
	raw, err := json.Marshal(transport.tableReads[0])
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"code":"prediqtpedia","scope":"12","table":"shares","json":true,"limit":5,"lower_bound":"alice","upper_bound":"bob","table_key":"byholder"}`,
		string(raw))
}

func TestReadTableValidation(t *testing.T) {
	transport := &mockTransport{}
	client := newTestClient(t, transport)

	_, err := client.ReadTable(context.Background(), "", "scope", "table", types.TableQuery{})
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	_, err = client.ReadTable(context.Background(), "code", "scope", "table", types.TableQuery{Limit: -1})
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))

	assert.Empty(t, transport.tableReads)
}

func TestGetMarket(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		transport := &mockTransport{
			tableFunc: func(ctx context.Context, req types.TableRowsRequest) (*types.TableRowsResponse, error) {
				return rowsOf(t, map[string]any{
					"id": 7, "creator": "alice", "resolver": "bob", "ipfs": "QmHash",
					"endofmarkettime": "1700000000", "state": 1,
				}), nil
			},
		}
		client := newTestClient(t, transport)

		market, err := client.GetMarket(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, market)
		assert.Equal(t, "alice", market.Creator)
		assert.Equal(t, int64(1700000000), market.EndOfMarketTime.Int64())

		req := transport.tableReads[0]
		assert.Equal(t, "markets", req.Table)
		assert.Equal(t, "7", req.LowerBound)
		assert.Equal(t, "7", req.UpperBound)
		assert.Equal(t, 1, req.Limit)
	})

	t.Run("absent", func(t *testing.T) {
		client := newTestClient(t, &mockTransport{})
		market, err := client.GetMarket(context.Background(), 404)
		require.NoError(t, err)
		assert.Nil(t, market)
	})

	t.Run("next row is not a match", func(t *testing.T) {
		transport := &mockTransport{
			tableFunc: func(ctx context.Context, req types.TableRowsRequest) (*types.TableRowsResponse, error) {
				return rowsOf(t, map[string]any{"id": 8}), nil
			},
		}
		client := newTestClient(t, transport)
		market, err := client.GetMarket(context.Background(), 7)
		require.NoError(t, err)
		assert.Nil(t, market)
	})
}

func TestGetOrders(t *testing.T) {
	transport := &mockTransport{
		tableFunc: func(ctx context.Context, req types.TableRowsRequest) (*types.TableRowsResponse, error) {
			return rowsOf(t,
				map[string]any{"id": 1, "creator": "alice", "limit": "0.5000 EOS", "shares": 4, "isbid": true},
				map[string]any{"id": 2, "creator": "bob", "limit": "0.6000 EOS", "shares": "9", "isbid": false},
			), nil
		},
	}
	client := newTestClient(t, transport)

	orders, err := client.GetOrders(context.Background(), types.GetOrdersInput{
		Side: types.ShareSideNo, MarketID: 3, Offset: 10,
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.True(t, orders[0].IsBid)
	assert.Equal(t, int64(9), orders[1].Shares.Int64())

	req := transport.tableReads[0]
	assert.Equal(t, "prediqtmarkt", req.Code)
	assert.Equal(t, "3", req.Scope)
	assert.Equal(t, "lmtorderno", req.Table)
	assert.Equal(t, types.DefaultTableLimit, req.Limit)
	assert.Equal(t, "10", req.LowerBound)

	_, err = client.GetOrders(context.Background(), types.GetOrdersInput{Side: "maybe"})
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
	assert.Len(t, transport.tableReads, 1)
}

func TestGetSharesAndFees(t *testing.T) {
	transport := &mockTransport{}
	client := newTestClient(t, transport)

	shares, err := client.GetShares(context.Background(), 12, types.TableQuery{})
	require.NoError(t, err)
	assert.Empty(t, shares)

	_, err = client.GetReferrals(context.Background(), 12, types.TableQuery{Limit: 20})
	require.NoError(t, err)

	_, err = client.GetFees(context.Background(), types.TableQuery{})
	require.NoError(t, err)

	require.Len(t, transport.tableReads, 3)
	assert.Equal(t, "shares", transport.tableReads[0].Table)
	assert.Equal(t, "12", transport.tableReads[0].Scope)
	assert.Equal(t, "referrals", transport.tableReads[1].Table)
	assert.Equal(t, 20, transport.tableReads[1].Limit)
	assert.Equal(t, "fees", transport.tableReads[2].Table)
	assert.Equal(t, "prediqtpedia", transport.tableReads[2].Scope)
}

func TestGetBalance(t *testing.T) {
	transport := &mockTransport{
		tableFunc: func(ctx context.Context, req types.TableRowsRequest) (*types.TableRowsResponse, error) {
			return rowsOf(t, map[string]any{"holder": "alice", "balance": "3.0000 EOS"}), nil
		},
	}
	client := newTestClient(t, transport)

	balance, err := client.GetBalance(context.Background(), "alice", "EOS")
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, "3.0000 EOS", balance.Balance)
	assert.Equal(t, "EOS", transport.tableReads[0].Scope)
	assert.Equal(t, "balances", transport.tableReads[0].Table)
}

func TestGetIQBalance(t *testing.T) {
	transport := &mockTransport{
		balanceFunc: func(ctx context.Context, account, symbol, code string) ([]string, error) {
			assert.Equal(t, "alice", account)
			assert.Equal(t, "IQ", symbol)
			assert.Equal(t, "everipediaiq", code)
			return []string{"1234.000 IQ"}, nil
		},
	}
	client := newTestClient(t, transport)

	balance, err := client.GetIQBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "1234.000 IQ", balance)
}

func TestGetUserResources(t *testing.T) {
	transport := &mockTransport{
		accountFunc: func(ctx context.Context, name string) (*types.Account, error) {
			var account types.Account
			err := json.Unmarshal([]byte(`{
				"account_name": "alice",
				"ram_quota": 8192, "ram_usage": "3072",
				"net_limit": {"used": 10, "available": 90, "max": 100},
				"cpu_limit": {"used": "5", "available": "45", "max": "50"}
			}`), &account)
			return &account, err
		},
	}
	client := newTestClient(t, transport)

	resources, err := client.GetUserResources(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(8192), resources.RAMQuota)
	assert.Equal(t, int64(3072), resources.RAMUsage)
	assert.Equal(t, int64(90), resources.Net.Available.Int64())
	assert.Equal(t, int64(50), resources.CPU.Max.Int64())

	_, err = client.GetUserResources(context.Background(), "")
	assert.True(t, errors.Is(err, types.ErrInvalidArgument))
}
