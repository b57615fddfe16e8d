package prediqtclient

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"

	"github.com/prediqt/sdk-go/core/types"
	"github.com/prediqt/sdk-go/core/util"
)

// readRows reads a table and decodes every row into T.
func readRows[T any](ctx context.Context, c *Client, contract, scope, table string, query types.TableQuery) ([]T, error) {
	resp, err := c.ReadTable(ctx, contract, scope, table, query)
	if err != nil {
		return nil, err
	}

	rows := make([]T, len(resp.Rows))
	for i, raw := range resp.Rows {
		if err := json.Unmarshal(raw, &rows[i]); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s row %d", table, i)
		}
	}
	return rows, nil
}

// paged fills in the default page size.
func paged(query types.TableQuery) types.TableQuery {
	if query.Limit == 0 {
		query.Limit = types.DefaultTableLimit
	}
	return query
}

func scopeOf(marketID uint64) string {
	return strconv.FormatUint(marketID, 10)
}

// ═══════════════════════════════════════════════════════════════
// MARKET CONTRACT TABLES
// ═══════════════════════════════════════════════════════════════

// GetFees reads the platform fee table.
//
// Maps to: fees table, scoped by the market contract
func (c *Client) GetFees(ctx context.Context, query types.TableQuery) ([]types.Fee, error) {
	return readRows[types.Fee](ctx, c, c.contracts.Market, c.contracts.Market, "fees", paged(query))
}

// GetShares reads the share balances of a market.
//
// Maps to: shares table, scoped by market id
func (c *Client) GetShares(ctx context.Context, marketID uint64, query types.TableQuery) ([]types.Share, error) {
	return readRows[types.Share](ctx, c, c.contracts.Market, scopeOf(marketID), "shares", paged(query))
}

// GetReferrals reads the referred shares of a market.
//
// Maps to: referrals table, scoped by market id
func (c *Client) GetReferrals(ctx context.Context, marketID uint64, query types.TableQuery) ([]types.Share, error) {
	return readRows[types.Share](ctx, c, c.contracts.Market, scopeOf(marketID), "referrals", paged(query))
}

// GetMarkets reads a page of the markets table.
func (c *Client) GetMarkets(ctx context.Context, query types.TableQuery) ([]types.Market, error) {
	return readRows[types.Market](ctx, c, c.contracts.Market, c.contracts.Market, "markets", paged(query))
}

// GetMarket reads one market by id. It returns nil when there is no such
// market.
func (c *Client) GetMarket(ctx context.Context, marketID uint64) (*types.Market, error) {
	id := scopeOf(marketID)
	markets, err := readRows[types.Market](ctx, c, c.contracts.Market, c.contracts.Market, "markets", types.TableQuery{
		Limit:      1,
		LowerBound: id,
		UpperBound: id,
	})
	if err != nil {
		return nil, err
	}
	if len(markets) == 0 || uint64(markets[0].ID.Int64()) != marketID {
		return nil, nil
	}
	return &markets[0], nil
}

// GetBalance reads the balance of holder in the market contract's balances
// table for symbol. It returns nil when the holder has none.
func (c *Client) GetBalance(ctx context.Context, holder, symbol string) (*types.Balance, error) {
	if holder == "" || symbol == "" {
		return nil, types.InvalidArgumentf("holder and symbol are required")
	}
	balances, err := readRows[types.Balance](ctx, c, c.contracts.Market, symbol, "balances", types.TableQuery{
		Limit:      1,
		LowerBound: holder,
		UpperBound: holder,
	})
	if err != nil {
		return nil, err
	}
	if len(balances) == 0 {
		return nil, nil
	}
	return &balances[0], nil
}

// ═══════════════════════════════════════════════════════════════
// SECONDARY MARKET TABLES
// ═══════════════════════════════════════════════════════════════

// GetOrders reads the open orders of one side of a market.
//
// Maps to: lmtorderyes | lmtorderno table, scoped by market id
func (c *Client) GetOrders(ctx context.Context, input types.GetOrdersInput) ([]types.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	query := paged(types.TableQuery{Limit: input.Limit})
	if input.Offset > 0 {
		query.LowerBound = strconv.FormatUint(input.Offset, 10)
	}
	return readRows[types.Order](ctx, c, c.contracts.SecondaryMarket, scopeOf(input.MarketID),
		"lmtorder"+string(input.Side), query)
}

// ═══════════════════════════════════════════════════════════════
// ACCOUNTS
// ═══════════════════════════════════════════════════════════════

// GetIQBalance returns the native token balance of user, or "" when the
// user holds none.
func (c *Client) GetIQBalance(ctx context.Context, user string) (string, error) {
	if user == "" {
		return "", types.InvalidArgumentf("user is required")
	}
	balances, err := c.transport.GetCurrencyBalance(ctx, user, types.NativeTokenSymbol, c.contracts.IQToken)
	if err != nil {
		return "", errors.WithStack(err)
	}
	for _, balance := range balances {
		if util.AssetSymbol(balance) == types.NativeTokenSymbol {
			return balance, nil
		}
	}
	return "", nil
}

func (c *Client) GetAccount(ctx context.Context, name string) (*types.Account, error) {
	if name == "" {
		return nil, types.InvalidArgumentf("account name is required")
	}
	account, err := c.transport.GetAccount(ctx, name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return account, nil
}

// GetUserResources summarizes the RAM, NET and CPU usage of an account.
func (c *Client) GetUserResources(ctx context.Context, name string) (*types.UserResources, error) {
	account, err := c.GetAccount(ctx, name)
	if err != nil || account == nil {
		return nil, err
	}
	return &types.UserResources{
		RAMQuota: account.RAMQuota.Int64(),
		RAMUsage: account.RAMUsage.Int64(),
		Net:      account.NetLimit,
		CPU:      account.CPULimit,
	}, nil
}
