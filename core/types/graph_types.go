package types

// Result types of the GraphQL read API. Field names follow the selection sets
// built by core/graphqueries.

type UserGQL struct {
	Name string `json:"name"`
}

type BlockGQL struct {
	Num  int64  `json:"num,omitempty"`
	ID   string `json:"id,omitempty"`
	Time string `json:"time"`
}

// TransactionRefGQL points at the chain transaction behind an event.
type TransactionRefGQL struct {
	TrxURL string   `json:"trx_url"`
	Block  BlockGQL `json:"block"`
}

type MarketIpfsGQL struct {
	Hash                  string   `json:"hash"`
	Title                 string   `json:"title"`
	Description           string   `json:"description,omitempty"`
	ImageURL              string   `json:"image_url"`
	Category              string   `json:"category"`
	Tags                  []string `json:"tags,omitempty"`
	ResolutionDescription string   `json:"resolution_description,omitempty"`
}

type LastTradeGQL struct {
	YesPrice float64 `json:"yes_price"`
}

type MarketVolumeGQL struct {
	EOS float64 `json:"eos"`
}

type OrderBookGQL struct {
	OrderID     int64             `json:"order_id"`
	Creator     string            `json:"creator"`
	Price       float64           `json:"price"`
	Currency    string            `json:"currency"`
	Type        string            `json:"type"`
	Quantity    float64           `json:"quantity"`
	Symbol      string            `json:"symbol"`
	Transaction TransactionRefGQL `json:"transaction"`
}

type TradeHistoryGQL struct {
	YesPrice    float64            `json:"yes_price"`
	NoPrice     float64            `json:"no_price,omitempty"`
	Currency    string             `json:"currency,omitempty"`
	Size        float64            `json:"size,omitempty"`
	Transaction *TransactionRefGQL `json:"transaction,omitempty"`
}

// MarketGQL is an entry of the markets list.
type MarketGQL struct {
	ID         int64              `json:"id"`
	Creator    UserGQL            `json:"creator"`
	Resolver   UserGQL            `json:"resolver"`
	Resolution string             `json:"resolution"`
	ResolvedAt *TransactionRefGQL `json:"resolved_at"`
	ProposedAt *TransactionRefGQL `json:"proposed_at,omitempty"`
	ApprovedAt *TransactionRefGQL `json:"approved_at,omitempty"`
	RejectedAt *TransactionRefGQL `json:"rejected_at,omitempty"`
	Ipfs       MarketIpfsGQL      `json:"ipfs"`
	IsHidden   bool               `json:"is_hidden"`
	IsStale    bool               `json:"is_stale"`
	State      MarketState        `json:"state"`
	EndTime    string             `json:"end_time"`
	LastTrade  *LastTradeGQL      `json:"last_trade"`
	Volume     MarketVolumeGQL    `json:"volume"`
	OrderBook  []OrderBookGQL     `json:"order_book"`
}

// ExtendedMarketGQL is a single market with its trade history.
type ExtendedMarketGQL struct {
	MarketGQL
	TradeHistory []TradeHistoryGQL `json:"trade_history"`
}

type MarketMetadataGQL struct {
	ID   int64         `json:"id"`
	Ipfs MarketIpfsGQL `json:"ipfs"`
}

type ShareHolderGQL struct {
	Market      struct{ ID int64 `json:"id"` } `json:"market"`
	Shareholder UserGQL                        `json:"shareholder"`
	Quantity    float64                        `json:"quantity"`
	Symbol      string                         `json:"symbol"`
	UpdatedAt   BlockGQL                       `json:"updated_at"`
}

type RelatedMarketGQL struct {
	ID        int64           `json:"id"`
	Ipfs      MarketIpfsGQL   `json:"ipfs"`
	OrderBook []OrderBookGQL  `json:"order_book"`
	Volume    MarketVolumeGQL `json:"volume"`
	LastTrade *LastTradeGQL   `json:"last_trade"`
}

// MarketPageGQL is everything the market page renders. Shareholders is only
// populated when a viewer was given.
type MarketPageGQL struct {
	ID           int64              `json:"id"`
	Creator      UserGQL            `json:"creator"`
	Resolver     UserGQL            `json:"resolver"`
	Resolution   string             `json:"resolution"`
	ResolvedAt   *TransactionRefGQL `json:"resolved_at"`
	Ipfs         MarketIpfsGQL      `json:"ipfs"`
	IsStale      bool               `json:"is_stale"`
	State        MarketState        `json:"state"`
	EndTime      string             `json:"end_time"`
	LastTrade    *LastTradeGQL      `json:"last_trade"`
	Shareholders []ShareHolderGQL   `json:"shareholders,omitempty"`
	OrderBook    []OrderBookGQL     `json:"order_book"`
	TradeHistory []TradeHistoryGQL  `json:"trade_history"`
	Volume       MarketVolumeGQL    `json:"volume"`
	Related      []RelatedMarketGQL `json:"related"`
}

type PlatformFeesGQL struct {
	ID          int64    `json:"id"`
	Amount      float64  `json:"amount"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Currency    string   `json:"currency"`
	UpdatedAt   BlockGQL `json:"updated_at"`
}

type CategoriesGQL struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

type DappInfoGQL struct {
	TermsOfServiceURL string `json:"terms_of_service_url"`
	TwitterURL        string `json:"twitter_url"`
	MediumURL         string `json:"medium_url"`
	TelegramURL       string `json:"telegram_url"`
	SupportEmail      string `json:"support_email"`
	Config            struct {
		TextareaWhitelist []string `json:"textarea_whitelist"`
	} `json:"config"`
}

// ChainInfoGQL reports how far the indexer lags behind the chain head.
type ChainInfoGQL struct {
	BlocksBehind int64 `json:"blocks_behind"`
}

// ═══════════════════════════════════════════════════════════════
// USER PROFILE
// ═══════════════════════════════════════════════════════════════

type MarketRefGQL struct {
	ID         int64         `json:"id"`
	EndTime    string        `json:"end_time,omitempty"`
	Ipfs       MarketIpfsGQL `json:"ipfs"`
	LastTrade  *LastTradeGQL `json:"last_trade,omitempty"`
	Resolution string        `json:"resolution,omitempty"`
}

type UserProfileReferralGQL struct {
	Market    MarketRefGQL `json:"market"`
	YesShares float64      `json:"yes_shares"`
	NoShares  float64      `json:"no_shares"`
	Referrer  string       `json:"referrer"`
}

type UserProfileSharesOwnedGQL struct {
	Market                   MarketRefGQL `json:"market"`
	Shareholder              UserGQL      `json:"shareholder"`
	UserAveragePricePerShare float64      `json:"user_average_price_per_share"`
	Quantity                 float64      `json:"quantity"`
	Symbol                   string       `json:"symbol"`
}

type UserProfileOpenOrderGQL struct {
	Market MarketRefGQL `json:"market"`
	OrderBookGQL
}

type UserProfileFilledOrderGQL struct {
	Market      MarketRefGQL      `json:"market"`
	Symbol      string            `json:"symbol"`
	Price       float64           `json:"price"`
	Currency    string            `json:"currency"`
	Quantity    float64           `json:"quantity"`
	Transaction TransactionRefGQL `json:"transaction"`
}

type UserProfileGQL struct {
	Name         string                      `json:"name"`
	Referrals    []UserProfileReferralGQL    `json:"referrals"`
	SharesOwned  []UserProfileSharesOwnedGQL `json:"shares_owned"`
	OrdersOpen   []UserProfileOpenOrderGQL   `json:"orders_open"`
	OrdersFilled []UserProfileFilledOrderGQL `json:"orders_filled"`
}

// UserSettingsGQL holds per-user preferences kept by the platform backend.
type UserSettingsGQL struct {
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	Language      string `json:"language"`
	Notifications struct {
		MarketResolved bool `json:"market_resolved"`
		OrderFilled    bool `json:"order_filled"`
		NewMarkets     bool `json:"new_markets"`
	} `json:"notifications"`
}

// ═══════════════════════════════════════════════════════════════
// STATS, LEADERBOARD & DISPUTES
// ═══════════════════════════════════════════════════════════════

type AssetAmountGQL struct {
	Asset    string  `json:"asset"`
	Quantity float64 `json:"quantity"`
}

type StatsGQL struct {
	ReportStart          string           `json:"report_start"`
	ReportEnd            string           `json:"report_end"`
	TotalMarketsProposed int64            `json:"total_markets_proposed"`
	TotalMarketsAccepted int64            `json:"total_markets_accepted"`
	TotalMarketsRejected int64            `json:"total_markets_rejected"`
	TotalTradeVolume     []AssetAmountGQL `json:"total_trade_volume"`
}

type LeaderboardTraderGQL struct {
	Period           LeaderboardPeriod `json:"period"`
	Rank             int64             `json:"rank"`
	Name             string            `json:"name"`
	SharesTraded     float64           `json:"shares_traded"`
	ProfitableTrades int64             `json:"profitable_trades"`
	ROI              float64           `json:"roi"`
}

type LeaderboardGQL struct {
	Period  LeaderboardPeriod      `json:"period"`
	Page    int64                  `json:"page"`
	Traders []LeaderboardTraderGQL `json:"traders"`
}

type DisputeVoteGQL struct {
	Voter       UserGQL           `json:"voter"`
	Outcome     string            `json:"outcome"`
	Transaction TransactionRefGQL `json:"transaction"`
}

type DisputeGQL struct {
	ID       int64              `json:"id"`
	State    string             `json:"state"`
	Reason   string             `json:"reason"`
	OpenedBy UserGQL            `json:"opened_by"`
	OpenedAt *TransactionRefGQL `json:"opened_at"`
	Votes    []DisputeVoteGQL   `json:"votes"`
}

// DisputedMarketGQL is a market together with its open dispute.
type DisputedMarketGQL struct {
	ID         int64              `json:"id"`
	Creator    UserGQL            `json:"creator"`
	Resolver   UserGQL            `json:"resolver"`
	Resolution string             `json:"resolution"`
	ResolvedAt *TransactionRefGQL `json:"resolved_at"`
	Ipfs       MarketIpfsGQL      `json:"ipfs"`
	State      MarketState        `json:"state"`
	EndTime    string             `json:"end_time"`
	Dispute    *DisputeGQL        `json:"dispute"`
}
