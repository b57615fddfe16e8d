package graphclient

import (
	"context"

	"github.com/prediqt/sdk-go/core/graphqueries"
	"github.com/prediqt/sdk-go/core/types"
)

var _ types.IPrediqtGraph = (*Client)(nil)

// Lists come back nil when the root field is null or absent, and empty when
// the endpoint returned an empty list.

func queryList[T any](ctx context.Context, c *Client, doc graphqueries.Document) ([]T, error) {
	var out []T
	if err := c.Query(ctx, doc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func queryOne[T any](ctx context.Context, c *Client, doc graphqueries.Document) (*T, error) {
	var out *T
	if err := c.Query(ctx, doc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMarkets(ctx context.Context, input types.ListMarketsInput) ([]types.MarketGQL, error) {
	doc, err := graphqueries.Markets(input)
	if err != nil {
		return nil, err
	}
	return queryList[types.MarketGQL](ctx, c, doc)
}

func (c *Client) ListProposedMarkets(ctx context.Context, input types.ProposedMarketsInput) ([]types.MarketGQL, error) {
	doc, err := graphqueries.ProposedMarkets(input)
	if err != nil {
		return nil, err
	}
	return queryList[types.MarketGQL](ctx, c, doc)
}

func (c *Client) ListPendingResolutionMarkets(ctx context.Context, input types.PendingResolutionInput) ([]types.MarketGQL, error) {
	doc, err := graphqueries.PendingResolutionMarkets(input)
	if err != nil {
		return nil, err
	}
	return queryList[types.MarketGQL](ctx, c, doc)
}

func (c *Client) GetMarket(ctx context.Context, marketID int64) (*types.ExtendedMarketGQL, error) {
	return queryOne[types.ExtendedMarketGQL](ctx, c, graphqueries.Market(marketID))
}

func (c *Client) GetMarketMetadata(ctx context.Context, marketID int64) (*types.MarketMetadataGQL, error) {
	return queryOne[types.MarketMetadataGQL](ctx, c, graphqueries.MarketMetadata(marketID))
}

func (c *Client) GetMarketPage(ctx context.Context, marketID int64, viewer *string) (*types.MarketPageGQL, error) {
	return queryOne[types.MarketPageGQL](ctx, c, graphqueries.MarketPage(marketID, viewer))
}

// GetShareholders unwraps market_by_id.shareholders. A missing market yields
// nil.
func (c *Client) GetShareholders(ctx context.Context, marketID int64, user string) ([]types.ShareHolderGQL, error) {
	market, err := queryOne[struct {
		Shareholders []types.ShareHolderGQL `json:"shareholders"`
	}](ctx, c, graphqueries.Shareholders(marketID, user))
	if err != nil || market == nil {
		return nil, err
	}
	return market.Shareholders, nil
}

func (c *Client) GetDisputedMarket(ctx context.Context, marketID int64) (*types.DisputedMarketGQL, error) {
	return queryOne[types.DisputedMarketGQL](ctx, c, graphqueries.DisputedMarket(marketID))
}

func (c *Client) GetUserProfile(ctx context.Context, name string) (*types.UserProfileGQL, error) {
	return queryOne[types.UserProfileGQL](ctx, c, graphqueries.UserProfile(name))
}

func (c *Client) GetUserSettings(ctx context.Context, name string) (*types.UserSettingsGQL, error) {
	return queryOne[types.UserSettingsGQL](ctx, c, graphqueries.UserSettings(name))
}

func (c *Client) GetPlatformFees(ctx context.Context) ([]types.PlatformFeesGQL, error) {
	return queryList[types.PlatformFeesGQL](ctx, c, graphqueries.PlatformFees())
}

func (c *Client) GetCategoriesAndTags(ctx context.Context) ([]types.CategoriesGQL, error) {
	return queryList[types.CategoriesGQL](ctx, c, graphqueries.CategoriesAndTags())
}

func (c *Client) GetDappInfo(ctx context.Context) (*types.DappInfoGQL, error) {
	return queryOne[types.DappInfoGQL](ctx, c, graphqueries.DappInfo())
}

func (c *Client) GetChainInfo(ctx context.Context) (*types.ChainInfoGQL, error) {
	return queryOne[types.ChainInfoGQL](ctx, c, graphqueries.ChainInfo())
}

func (c *Client) GetStatsByPeriod(ctx context.Context, input types.StatsByPeriodInput) ([]types.StatsGQL, error) {
	doc, err := graphqueries.StatsByPeriod(input)
	if err != nil {
		return nil, err
	}
	return queryList[types.StatsGQL](ctx, c, doc)
}

func (c *Client) GetLeaderboard(ctx context.Context, input types.LeaderboardInput) (*types.LeaderboardGQL, error) {
	doc, err := graphqueries.Leaderboard(input)
	if err != nil {
		return nil, err
	}
	return queryOne[types.LeaderboardGQL](ctx, c, doc)
}
