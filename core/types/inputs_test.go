package types

import (
	"testing"

	"github.com/golang-sql/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareSide(t *testing.T) {
	require.NoError(t, ShareSideYes.Validate())
	require.NoError(t, ShareSideNo.Validate())

	err := ShareSide("maybe").Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), `"maybe"`)

	assert.True(t, ShareSideYes.ShareType())
	assert.False(t, ShareSideNo.ShareType())
	assert.Equal(t, ShareSideYes, ShareSideOf(true))
	assert.Equal(t, ShareSideNo, ShareSideOf(false))
}

func TestActionInputValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{ Validate() error }
		wantErr bool
	}{
		{
			name: "valid create market",
			input: &CreateMarketInput{
				Creator: "alice", Resolver: "bob", Ipfs: "QmHash", TimeIn: 1700000000, Fee: "5.0000 IQ",
			},
		},
		{
			name: "create market with malformed fee",
			input: &CreateMarketInput{
				Creator: "alice", Resolver: "bob", Ipfs: "QmHash", TimeIn: 1700000000, Fee: "five IQ",
			},
			wantErr: true,
		},
		{
			name:    "create market without resolver",
			input:   &CreateMarketInput{Creator: "alice", Ipfs: "QmHash", TimeIn: 1, Fee: "5.0000 IQ"},
			wantErr: true,
		},
		{
			name: "limit order with unknown side",
			input: &PlaceLimitOrderInput{
				User: "alice", MarketID: 1, Side: "maybe", Shares: 10, Limit: "0.5000 EOS",
			},
			wantErr: true,
		},
		{
			name: "valid limit order",
			input: &PlaceLimitOrderInput{
				User: "alice", MarketID: 1, Side: ShareSideNo, Shares: 10, Limit: "0.5000 EOS", Buy: true,
			},
		},
		{
			name:    "buy without shares",
			input:   &BuySharesInput{User: "alice", Side: ShareSideYes, Limit: "0.5000 EOS"},
			wantErr: true,
		},
		{
			name: "create market with negative fee",
			input: &CreateMarketInput{
				Creator: "alice", Resolver: "bob", Ipfs: "QmHash", TimeIn: 1700000000, Fee: "-5.0000 IQ",
			},
			wantErr: true,
		},
		{
			name: "buy with exponent limit",
			input: &BuySharesInput{
				User: "alice", MarketID: 1, Side: ShareSideYes, Shares: 10, Limit: "1.5e2 EOS", Deposit: true,
			},
			wantErr: true,
		},
		{
			name:    "withdraw exponent quantity",
			input:   &WithdrawInput{User: "alice", Quantity: "1e3 IQ"},
			wantErr: true,
		},
		{
			name:    "resolve with empty outcome",
			input:   &ResolveMarketInput{Resolver: "bob", MarketID: 3},
			wantErr: true,
		},
		{
			name:    "withdraw malformed quantity",
			input:   &WithdrawInput{User: "alice", Quantity: "10 EOS EOS"},
			wantErr: true,
		},
		{
			name: "multisig without requested signers",
			input: &ProposeMultisigInput{
				Proposer: "alice", ProposalName: "upgrade", Trx: map[string]any{},
			},
			wantErr: true,
		},
		{
			name: "multisig with incomplete signer",
			input: &ProposeMultisigInput{
				Proposer: "alice", ProposalName: "upgrade", Trx: map[string]any{},
				Requested: []Authorization{{Actor: "bob"}},
			},
			wantErr: true,
		},
		{
			name:  "dispute vote",
			input: &DisputeVoteInput{Voter: "carol", MarketID: 2, Side: ShareSideYes},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestGraphInputValidation(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		in := ListMarketsInput{}.WithDefaults()
		assert.Equal(t, SortEndingLatest, in.SortBy)
		assert.Equal(t, []MarketState{MarketStateApproved, MarketStateResolved}, in.States)

		in = ListMarketsInput{SortBy: SortNewest, States: []MarketState{MarketStateRejected}}.WithDefaults()
		assert.Equal(t, SortNewest, in.SortBy)
		assert.Equal(t, []MarketState{MarketStateRejected}, in.States)
	})

	t.Run("filter name must be a GraphQL name", func(t *testing.T) {
		in := ListMarketsInput{Filter: &FilterParam{ParamName: "category) { id }", ParamValue: "x"}}
		assert.True(t, errors.Is(in.Validate(), ErrInvalidArgument))

		in.Filter.ParamName = "category"
		assert.NoError(t, in.Validate())
	})

	t.Run("enum values must be names", func(t *testing.T) {
		in := ListMarketsInput{SortBy: "ENDING LATEST"}
		assert.True(t, errors.Is(in.Validate(), ErrInvalidArgument))

		in = ListMarketsInput{States: []MarketState{"null"}}
		assert.True(t, errors.Is(in.Validate(), ErrInvalidArgument))
	})

	t.Run("negative paging", func(t *testing.T) {
		in := PendingResolutionInput{Skip: -1}
		assert.True(t, errors.Is(in.Validate(), ErrInvalidArgument))
	})

	t.Run("stats needs a real date", func(t *testing.T) {
		in := StatsByPeriodInput{GroupBy: StatsByWeek, Limit: 4}
		assert.True(t, errors.Is(in.Validate(), ErrInvalidArgument))

		in.EndDate = civil.Date{Year: 2020, Month: 3, Day: 1}
		assert.NoError(t, in.Validate())
	})

	t.Run("leaderboard type is optional", func(t *testing.T) {
		in := LeaderboardInput{Period: LeaderboardWeek}
		assert.NoError(t, in.Validate())

		bad := LeaderboardType("ROI!")
		in.Type = &bad
		assert.True(t, errors.Is(in.Validate(), ErrInvalidArgument))
	})
}

func TestContractsMerge(t *testing.T) {
	merged := DefaultContracts().Merge(Contracts{Market: "testmarket11", Bank: "testbank1111"})

	assert.Equal(t, "testmarket11", merged.Market)
	assert.Equal(t, "testbank1111", merged.Bank)
	assert.Equal(t, "prediqtmarkt", merged.SecondaryMarket)
	assert.Equal(t, "everipediaiq", merged.IQToken)
	assert.NoError(t, ValidateStruct(&merged))

	assert.Error(t, ValidateStruct(&Contracts{Market: "only"}))
}

func TestDefaultTransactParams(t *testing.T) {
	p := DefaultTransactParams()
	assert.Equal(t, 3, p.BlocksBehind)
	assert.Equal(t, 60, p.ExpireSeconds)
	assert.NoError(t, ValidateStruct(&p))
}
