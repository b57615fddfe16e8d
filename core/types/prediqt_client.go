package types

import (
	"context"
)

// IPrediqtGraph reads platform state from the hosted GraphQL API.
type IPrediqtGraph interface {
	// ListMarkets returns approved and resolved markets, newest ending first by default
	ListMarkets(ctx context.Context, input ListMarketsInput) ([]MarketGQL, error)
	// ListProposedMarkets returns markets waiting for resolver approval
	ListProposedMarkets(ctx context.Context, input ProposedMarketsInput) ([]MarketGQL, error)
	// GetMarket returns a single market with its trade history, or nil
	GetMarket(ctx context.Context, marketID int64) (*ExtendedMarketGQL, error)
	// GetMarketMetadata returns only the IPFS metadata of a market, or nil
	GetMarketMetadata(ctx context.Context, marketID int64) (*MarketMetadataGQL, error)
	// GetMarketPage returns everything the market page shows. Shareholdings
	// are only selected when viewer is non-nil.
	GetMarketPage(ctx context.Context, marketID int64, viewer *string) (*MarketPageGQL, error)
	// GetShareholders returns the holdings of user in a market
	GetShareholders(ctx context.Context, marketID int64, user string) ([]ShareHolderGQL, error)
	GetUserProfile(ctx context.Context, name string) (*UserProfileGQL, error)
	GetPlatformFees(ctx context.Context) ([]PlatformFeesGQL, error)
	GetCategoriesAndTags(ctx context.Context) ([]CategoriesGQL, error)
	GetDappInfo(ctx context.Context) (*DappInfoGQL, error)
	// GetChainInfo reports how many blocks the indexer lags behind
	GetChainInfo(ctx context.Context) (*ChainInfoGQL, error)
	GetStatsByPeriod(ctx context.Context, input StatsByPeriodInput) ([]StatsGQL, error)
	GetLeaderboard(ctx context.Context, input LeaderboardInput) (*LeaderboardGQL, error)
	GetUserSettings(ctx context.Context, name string) (*UserSettingsGQL, error)
	ListPendingResolutionMarkets(ctx context.Context, input PendingResolutionInput) ([]MarketGQL, error)
	GetDisputedMarket(ctx context.Context, marketID int64) (*DisputedMarketGQL, error)
}

// IPrediqt composes, signs and submits contract actions, and reads contract
// tables.
type IPrediqt interface {
	/*
	 * authorization
	 */
	// Authorization returns a copy of the current signer list
	Authorization() []Authorization
	// SetAuthorization replaces the signer list, or leaves it untouched on error
	SetAuthorization(auth []Authorization) error
	// SetAuthorizationJSON is SetAuthorization for untyped input
	SetAuthorizationJSON(raw []byte) error
	// ResetAuthorization clears the signer list
	ResetAuthorization()

	// Submit sends actions as one transaction
	Submit(ctx context.Context, actions []Action) (*TransactResult, error)
	// ReadTable reads a range of rows of a contract table
	ReadTable(ctx context.Context, contract, scope, table string, query TableQuery) (*TableRowsResponse, error)

	/*
	 * market lifecycle
	 */
	CreateMarket(ctx context.Context, input CreateMarketInput) (*TransactResult, error)
	ProposeMarket(ctx context.Context, input ProposeMarketInput) (*TransactResult, error)
	AcceptMarket(ctx context.Context, input AcceptMarketInput) (*TransactResult, error)
	RejectMarket(ctx context.Context, input RejectMarketInput) (*TransactResult, error)
	DeleteMarket(ctx context.Context, input DeleteMarketInput) (*TransactResult, error)
	ResolveMarket(ctx context.Context, input ResolveMarketInput) (*TransactResult, error)
	InvalidateMarket(ctx context.Context, input InvalidateMarketInput) (*TransactResult, error)
	SetResolver(ctx context.Context, input SetResolverInput) (*TransactResult, error)
	SetFee(ctx context.Context, input SetFeeInput) (*TransactResult, error)

	/*
	 * shares and orders
	 */
	ClaimShares(ctx context.Context, input ClaimSharesInput) (*TransactResult, error)
	TransferShares(ctx context.Context, input TransferSharesInput) (*TransactResult, error)
	PlaceLimitOrder(ctx context.Context, input PlaceLimitOrderInput) (*TransactResult, error)
	CancelLimitOrder(ctx context.Context, input CancelLimitOrderInput) (*TransactResult, error)
	BuyShares(ctx context.Context, input BuySharesInput) (*TransactResult, error)
	SellShares(ctx context.Context, input SellSharesInput) (*TransactResult, error)

	/*
	 * account, governance, disputes
	 */
	Transfer(ctx context.Context, from, to, quantity, memo string) (*TransactResult, error)
	Withdraw(ctx context.Context, input WithdrawInput) (*TransactResult, error)
	SyncBank(ctx context.Context) (*TransactResult, error)
	ProposeMultisig(ctx context.Context, input ProposeMultisigInput) (*TransactResult, error)
	DisputeVote(ctx context.Context, input DisputeVoteInput) (*TransactResult, error)

	/*
	 * table and account reads
	 */
	// Paged reads default to DefaultTableLimit rows when query.Limit is zero
	GetFees(ctx context.Context, query TableQuery) ([]Fee, error)
	GetShares(ctx context.Context, marketID uint64, query TableQuery) ([]Share, error)
	GetReferrals(ctx context.Context, marketID uint64, query TableQuery) ([]Share, error)
	GetMarkets(ctx context.Context, query TableQuery) ([]Market, error)
	// GetMarket returns nil when no market has the id
	GetMarket(ctx context.Context, marketID uint64) (*Market, error)
	GetOrders(ctx context.Context, input GetOrdersInput) ([]Order, error)
	GetBalance(ctx context.Context, holder, symbol string) (*Balance, error)
	// GetIQBalance returns the native token balance of user, e.g. "10.000 IQ"
	GetIQBalance(ctx context.Context, user string) (string, error)
	GetAccount(ctx context.Context, name string) (*Account, error)
	GetUserResources(ctx context.Context, name string) (*UserResources, error)
}
