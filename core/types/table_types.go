package types

import (
	"encoding/json"

	"github.com/prediqt/sdk-go/core/util"
)

// TableQuery bounds a contract-table range read. Zero values are omitted from
// the request; callers page by moving LowerBound themselves.
type TableQuery struct {
	Limit      int
	LowerBound string
	UpperBound string
	TableKey   string
}

// DefaultTableLimit is the page size of the typed table reads.
const DefaultTableLimit = 100

// TableRowsRequest is the wire body of a table read.
type TableRowsRequest struct {
	Code       string `json:"code"`
	Scope      string `json:"scope"`
	Table      string `json:"table"`
	JSON       bool   `json:"json"`
	Limit      int    `json:"limit,omitempty"`
	LowerBound string `json:"lower_bound,omitempty"`
	UpperBound string `json:"upper_bound,omitempty"`
	TableKey   string `json:"table_key,omitempty"`
}

// TableRowsResponse is the wire response of a table read.
type TableRowsResponse struct {
	Rows []json.RawMessage `json:"rows"`
	More bool              `json:"more"`
}

// GetOrdersInput reads the open orders of one side of a market.
type GetOrdersInput struct {
	Side     ShareSide
	MarketID uint64
	Limit    int
	Offset   uint64
}

func (g *GetOrdersInput) Validate() error {
	if err := g.Side.Validate(); err != nil {
		return err
	}
	if g.Limit < 0 {
		return InvalidArgumentf("limit cannot be negative")
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════
// CONTRACT TABLE ROWS
// ═══════════════════════════════════════════════════════════════

// Market is a row of the markets table.
type Market struct {
	ID              util.FlexInt `json:"id"`
	Creator         string       `json:"creator"`
	Resolver        string       `json:"resolver"`
	Ipfs            string       `json:"ipfs"`
	ResolverInfo    string       `json:"resolver_info,omitempty"`
	EndOfMarketTime util.FlexInt `json:"endofmarkettime"`
	State           util.FlexInt `json:"state"`
}

// Share is a row of the shares and referrals tables, scoped by market.
type Share struct {
	Shareholder string       `json:"shareholder"`
	YesShares   util.FlexInt `json:"yes_shares"`
	NoShares    util.FlexInt `json:"no_shares"`
}

// Order is a row of the lmtorderyes / lmtorderno tables.
type Order struct {
	ID               util.FlexInt `json:"id"`
	Creator          string       `json:"creator"`
	CreatedTimestamp util.FlexInt `json:"created_timestamp"`
	Limit            string       `json:"limit"`
	Shares           util.FlexInt `json:"shares"`
	IsBid            bool         `json:"isbid"`
	Referral         string       `json:"referral"`
}

type Balance struct {
	Holder  string `json:"holder"`
	Balance string `json:"balance"`
}

type Fee struct {
	ID  util.FlexInt `json:"id"`
	Fee util.FlexInt `json:"fee"`
}

// ═══════════════════════════════════════════════════════════════
// ACCOUNT INFORMATION
// ═══════════════════════════════════════════════════════════════

type ResourceLimit struct {
	Used      util.FlexInt `json:"used"`
	Available util.FlexInt `json:"available"`
	Max       util.FlexInt `json:"max"`
}

// Account is the subset of an account's chain record the SDK exposes.
// Raw keeps the full response.
type Account struct {
	AccountName string          `json:"account_name"`
	RAMQuota    util.FlexInt    `json:"ram_quota"`
	RAMUsage    util.FlexInt    `json:"ram_usage"`
	NetWeight   util.FlexInt    `json:"net_weight"`
	CPUWeight   util.FlexInt    `json:"cpu_weight"`
	NetLimit    ResourceLimit   `json:"net_limit"`
	CPULimit    ResourceLimit   `json:"cpu_limit"`
	Raw         json.RawMessage `json:"-"`
}

// UserResources summarizes RAM, NET and CPU usage of an account.
type UserResources struct {
	RAMQuota int64
	RAMUsage int64
	Net      ResourceLimit
	CPU      ResourceLimit
}
