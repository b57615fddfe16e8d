package graphqueries

import (
	"github.com/prediqt/sdk-go/core/types"
	"github.com/prediqt/sdk-go/core/util"
)

// ═══════════════════════════════════════════════════════════════
// SHARED SELECTIONS
// ═══════════════════════════════════════════════════════════════

func user(name string) Selection {
	return Field(name, Field("name"))
}

func transactionRef(name string) Selection {
	return Field(name, Field("trx_url"), Field("block", Field("time")))
}

func ipfs(names ...string) Selection {
	return Field("ipfs", Fields(names...)...)
}

func fullIpfs() Selection {
	return ipfs("hash", "title", "description", "image_url", "category", "tags", "resolution_description")
}

func orderBook(name string) Selection {
	return Field(name, Fields("order_id", "creator", "price", "currency", "type", "quantity", "symbol")...).
		Add(transactionRef("transaction"))
}

func shareholders(user string) Selection {
	return Field("shareholders",
		Field("market", Field("id")),
		Field("shareholder", Field("name")),
		Field("quantity"),
		Field("symbol"),
		Field("updated_at", Fields("num", "id", "time")...),
	).WithArgs(String("shareholder", user))
}

func marketSummary() []Selection {
	return []Selection{
		Field("id"),
		user("creator"),
		user("resolver"),
		Field("resolution"),
		transactionRef("resolved_at"),
	}
}

func marketListEntry() []Selection {
	out := marketSummary()
	return append(out,
		transactionRef("proposed_at"),
		transactionRef("approved_at"),
		transactionRef("rejected_at"),
		fullIpfs(),
		Field("is_hidden"),
		Field("is_stale"),
		Field("state"),
		Field("end_time"),
		Field("last_trade", Field("yes_price")),
		Field("volume", Field("eos")),
		orderBook("order_book"),
	)
}

func marketByID(marketID int64, children ...Selection) Document {
	return Document{Root: Field("market_by_id", children...).WithArgs(Int("id", marketID))}
}

func withFilter(args []Arg, filter *types.FilterParam) []Arg {
	if filter == nil {
		return args
	}
	return append(args, String(filter.ParamName, filter.ParamValue))
}

// ═══════════════════════════════════════════════════════════════
// MARKET LISTS
// ═══════════════════════════════════════════════════════════════

// Markets builds the markets list query.
//
// Maps to: markets(sort_by, exclude_invalid_ipfs, skip, count, creator, [filter], state)
func Markets(input types.ListMarketsInput) (Document, error) {
	if err := input.Validate(); err != nil {
		return Document{}, err
	}
	input = input.WithDefaults()

	args := []Arg{
		Enum("sort_by", input.SortBy),
		Bool("exclude_invalid_ipfs", input.ExcludeInvalidIpfs),
		Int("skip", int64(input.Skip)),
		Int("count", int64(input.Count)),
		String("creator", input.Creator),
	}
	args = withFilter(args, input.Filter)
	args = append(args, EnumList("state", input.States))

	return Document{Root: Field("markets", marketListEntry()...).WithArgs(args...)}, nil
}

// ProposedMarkets builds the list of markets waiting for resolver approval.
func ProposedMarkets(input types.ProposedMarketsInput) (Document, error) {
	if err := input.Validate(); err != nil {
		return Document{}, err
	}
	return Markets(types.ListMarketsInput{
		ExcludeInvalidIpfs: true,
		Skip:               input.Skip,
		Count:              input.Count,
		Creator:            input.Creator,
		SortBy:             types.SortEndingLatest,
		States:             []types.MarketState{types.MarketStateProposed},
		Filter:             input.Filter,
	})
}

// PendingResolutionMarkets lists ended markets that still wait for an
// outcome, soonest first. The resolver argument is only sent when set.
func PendingResolutionMarkets(input types.PendingResolutionInput) (Document, error) {
	if err := input.Validate(); err != nil {
		return Document{}, err
	}

	args := []Arg{
		Enum("sort_by", types.SortEndingSoonest),
		Int("skip", int64(input.Skip)),
		Int("count", int64(input.Count)),
	}
	if input.Resolver != "" {
		args = append(args, String("resolver", input.Resolver))
	}
	args = append(args, EnumList("state", []types.MarketState{types.MarketStatePendingResolution}))

	return Document{Root: Field("markets", marketListEntry()...).WithArgs(args...)}, nil
}

// ═══════════════════════════════════════════════════════════════
// SINGLE MARKET
// ═══════════════════════════════════════════════════════════════

// Market builds the single market query, including its price history.
//
// Maps to: market_by_id(id)
func Market(marketID int64) Document {
	children := append(marketSummary(),
		fullIpfs(),
		Field("is_hidden"),
		Field("is_stale"),
		Field("state"),
		Field("end_time"),
		Field("last_trade", Field("yes_price")),
		Field("trade_history", Field("yes_price")),
		Field("volume", Field("eos")),
		orderBook("order_book"),
	)
	return marketByID(marketID, children...)
}

// MarketMetadata selects only the IPFS metadata of a market.
func MarketMetadata(marketID int64) Document {
	return marketByID(marketID, Field("id"), fullIpfs())
}

// MarketPage builds the market page query. The viewer's shareholdings are
// only selected when viewer is non-nil and non-empty.
func MarketPage(marketID int64, viewer *string) Document {
	children := append(marketSummary(),
		fullIpfs(),
		Field("is_stale"),
		Field("state"),
		Field("end_time"),
		Field("last_trade", Field("yes_price")),
	)
	if name := util.ValueOrDefault(viewer, ""); name != "" {
		children = append(children, shareholders(name))
	}
	children = append(children,
		orderBook("order_book"),
		Field("trade_history", Fields("yes_price", "no_price", "currency", "size")...).
			Add(transactionRef("transaction")),
		Field("volume", Field("eos")),
		Field("related",
			Field("id"),
			ipfs("hash", "title", "image_url", "category"),
			orderBook("order_book"),
			Field("volume", Field("eos")),
			Field("last_trade", Field("yes_price")),
		),
	)
	return marketByID(marketID, children...)
}

// Shareholders selects the holdings of user in a market. The result is
// nested under market_by_id.
func Shareholders(marketID int64, user string) Document {
	return marketByID(marketID, shareholders(user))
}

// DisputedMarket selects a market together with its dispute and the votes
// cast so far.
func DisputedMarket(marketID int64) Document {
	children := append(marketSummary(),
		fullIpfs(),
		Field("state"),
		Field("end_time"),
		Field("dispute",
			Field("id"),
			Field("state"),
			Field("reason"),
			user("opened_by"),
			transactionRef("opened_at"),
			Field("votes",
				user("voter"),
				Field("outcome"),
				transactionRef("transaction"),
			),
		),
	)
	return marketByID(marketID, children...)
}

// ═══════════════════════════════════════════════════════════════
// USERS
// ═══════════════════════════════════════════════════════════════

// UserProfile selects referrals, holdings and orders of a user.
//
// Maps to: user_profile(name)
func UserProfile(name string) Document {
	title := ipfs("title")
	return Document{Root: Field("user_profile",
		Field("name"),
		Field("referrals",
			Field("market", Field("id"), Field("end_time"), title),
			Field("yes_shares"),
			Field("no_shares"),
			Field("referrer"),
		),
		Field("shares_owned",
			Field("market", Field("id"), title, Field("last_trade", Field("yes_price")), Field("resolution")),
			user("shareholder"),
			Field("user_average_price_per_share"),
			Field("quantity"),
			Field("symbol"),
		),
		orderBook("orders_open").Add(Field("market", Field("id"), title)),
		Field("orders_filled",
			Field("market", Field("id"), title),
			Field("symbol"),
			Field("price"),
			Field("currency"),
			Field("quantity"),
			transactionRef("transaction"),
		),
	).WithArgs(String("name", name))}
}

// UserSettings selects the stored preferences of a user.
func UserSettings(name string) Document {
	return Document{Root: Field("user_settings",
		Field("name"),
		Field("display_name"),
		Field("language"),
		Field("notifications", Fields("market_resolved", "order_filled", "new_markets")...),
	).WithArgs(String("name", name))}
}

// ═══════════════════════════════════════════════════════════════
// PLATFORM
// ═══════════════════════════════════════════════════════════════

func PlatformFees() Document {
	return Document{Root: Field("platform_fees",
		Field("id"),
		Field("amount"),
		Field("name"),
		Field("description"),
		Field("currency"),
		Field("updated_at", Fields("num", "time", "id")...),
	)}
}

func CategoriesAndTags() Document {
	return Document{Root: Field("categories", Fields("name", "tags")...)}
}

func DappInfo() Document {
	return Document{Root: Field("dapp_info",
		Field("terms_of_service_url"),
		Field("twitter_url"),
		Field("medium_url"),
		Field("telegram_url"),
		Field("support_email"),
		Field("config", Field("textarea_whitelist")),
	)}
}

// ChainInfo selects how many blocks the indexer is behind the chain head.
func ChainInfo() Document {
	return Document{Root: Field("chain_info", Field("blocks_behind"))}
}

// StatsByPeriod builds the platform statistics query.
//
// Maps to: stats_by_period(group_by, end_date, limit)
func StatsByPeriod(input types.StatsByPeriodInput) (Document, error) {
	if err := input.Validate(); err != nil {
		return Document{}, err
	}
	return Document{Root: Field("stats_by_period",
		Field("report_start"),
		Field("report_end"),
		Field("total_markets_proposed"),
		Field("total_markets_accepted"),
		Field("total_markets_rejected"),
		Field("total_trade_volume", Fields("asset", "quantity")...),
	).WithArgs(
		Enum("group_by", input.GroupBy),
		Date("end_date", input.EndDate),
		Int("limit", int64(input.Limit)),
	)}, nil
}

// Leaderboard builds the leaderboard query. The type argument is only sent
// when set.
//
// Maps to: get_leaderboard(period, [type])
func Leaderboard(input types.LeaderboardInput) (Document, error) {
	if err := input.Validate(); err != nil {
		return Document{}, err
	}
	args := []Arg{Enum("period", input.Period)}
	if input.Type != nil {
		args = append(args, Enum("type", *input.Type))
	}
	return Document{Root: Field("get_leaderboard",
		Field("period"),
		Field("page"),
		Field("traders", Fields("period", "rank", "name", "shares_traded", "profitable_trades", "roi")...),
	).WithArgs(args...)}, nil
}
