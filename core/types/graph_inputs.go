package types

import (
	"regexp"

	"github.com/golang-sql/civil"
)

// graphQLName is the GraphQL Name grammar. Enum values and argument names are
// written into documents verbatim, so both must match it.
var graphQLName = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// ValidateGraphQLName reports whether s can be written bare into a document.
func ValidateGraphQLName(kind, s string) error {
	if !graphQLName.MatchString(s) {
		return InvalidArgumentf("%s %q is not a valid GraphQL name", kind, s)
	}
	return nil
}

func validateEnum(kind, s string) error {
	if err := ValidateGraphQLName(kind, s); err != nil {
		return err
	}
	switch s {
	case "true", "false", "null":
		return InvalidArgumentf("%s %q is reserved", kind, s)
	}
	return nil
}

// SortOrder orders market lists.
type SortOrder string

const (
	SortEndingLatest  SortOrder = "ENDING_LATEST"
	SortEndingSoonest SortOrder = "ENDING_SOONEST"
	SortNewest        SortOrder = "NEWEST"
	SortMostVolume    SortOrder = "MOST_VOLUME"
)

// MarketState is the lifecycle state of a market as reported by the indexer.
type MarketState string

const (
	MarketStateProposed          MarketState = "PROPOSED"
	MarketStateApproved          MarketState = "APPROVED"
	MarketStateRejected          MarketState = "REJECTED"
	MarketStateResolved          MarketState = "RESOLVED"
	MarketStateInvalid           MarketState = "INVALID"
	MarketStatePendingResolution MarketState = "PENDING_RESOLUTION"
	MarketStateDisputed          MarketState = "DISPUTED"
)

type LeaderboardPeriod string

const (
	LeaderboardDay     LeaderboardPeriod = "DAY"
	LeaderboardWeek    LeaderboardPeriod = "WEEK"
	LeaderboardMonth   LeaderboardPeriod = "MONTH"
	LeaderboardAllTime LeaderboardPeriod = "ALL_TIME"
)

type LeaderboardType string

const (
	LeaderboardROI              LeaderboardType = "ROI"
	LeaderboardProfitableTrades LeaderboardType = "PROFITABLE_TRADES"
	LeaderboardSharesTraded     LeaderboardType = "SHARES_TRADED"
)

type StatsGroupBy string

const (
	StatsByDay   StatsGroupBy = "DAY"
	StatsByWeek  StatsGroupBy = "WEEK"
	StatsByMonth StatsGroupBy = "MONTH"
)

// FilterParam injects one extra quoted argument into the root field of a
// market list query.
type FilterParam struct {
	ParamName  string
	ParamValue string
}

func (f *FilterParam) Validate() error {
	if f == nil {
		return nil
	}
	return ValidateGraphQLName("filter parameter", f.ParamName)
}

// ListMarketsInput is input for the markets list.
type ListMarketsInput struct {
	ExcludeInvalidIpfs bool
	Skip               int `validate:"gte=0"`
	Count              int `validate:"gte=0"`
	Creator            string
	SortBy             SortOrder     // Defaults to ENDING_LATEST
	States             []MarketState // Defaults to APPROVED, RESOLVED
	Filter             *FilterParam
}

// WithDefaults fills SortBy and States when unset.
func (l ListMarketsInput) WithDefaults() ListMarketsInput {
	if l.SortBy == "" {
		l.SortBy = SortEndingLatest
	}
	if len(l.States) == 0 {
		l.States = []MarketState{MarketStateApproved, MarketStateResolved}
	}
	return l
}

func (l *ListMarketsInput) Validate() error {
	if err := ValidateStruct(l); err != nil {
		return err
	}
	if l.SortBy != "" {
		if err := validateEnum("sort order", string(l.SortBy)); err != nil {
			return err
		}
	}
	for _, state := range l.States {
		if err := validateEnum("market state", string(state)); err != nil {
			return err
		}
	}
	return l.Filter.Validate()
}

// ProposedMarketsInput is input for the proposed markets list.
type ProposedMarketsInput struct {
	Skip    int `validate:"gte=0"`
	Count   int `validate:"gte=0"`
	Creator string
	Filter  *FilterParam
}

func (p *ProposedMarketsInput) Validate() error {
	if err := ValidateStruct(p); err != nil {
		return err
	}
	return p.Filter.Validate()
}

// StatsByPeriodInput groups platform statistics by period, ending at EndDate.
type StatsByPeriodInput struct {
	GroupBy StatsGroupBy `validate:"required"`
	EndDate civil.Date
	Limit   int `validate:"gt=0"`
}

func (s *StatsByPeriodInput) Validate() error {
	if err := ValidateStruct(s); err != nil {
		return err
	}
	if !s.EndDate.IsValid() {
		return InvalidArgumentf("end date %q is not a valid date", s.EndDate.String())
	}
	return validateEnum("stats group", string(s.GroupBy))
}

type LeaderboardInput struct {
	Period LeaderboardPeriod `validate:"required"`
	Type   *LeaderboardType
}

func (l *LeaderboardInput) Validate() error {
	if err := ValidateStruct(l); err != nil {
		return err
	}
	if err := validateEnum("leaderboard period", string(l.Period)); err != nil {
		return err
	}
	if l.Type != nil {
		return validateEnum("leaderboard type", string(*l.Type))
	}
	return nil
}

// PendingResolutionInput lists markets waiting for an outcome, optionally only
// those assigned to Resolver.
type PendingResolutionInput struct {
	Skip     int `validate:"gte=0"`
	Count    int `validate:"gte=0"`
	Resolver string
}

func (p *PendingResolutionInput) Validate() error {
	return ValidateStruct(p)
}
