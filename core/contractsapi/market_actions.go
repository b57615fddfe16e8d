package contractsapi

import (
	"github.com/prediqt/sdk-go/core/types"
)

// CreateMarketFeeMemo is the memo of the fee transfer bundled with createmarket.
const CreateMarketFeeMemo = "market creation fee"

type marketDefinitionPayload struct {
	Creator      string `json:"creator"`
	Resolver     string `json:"resolver"`
	Ipfs         string `json:"ipfs"`
	TimeIn       uint64 `json:"timeIn"`
	ResolverInfo string `json:"resolverInfo"`
}

type resolverMarketPayload struct {
	Resolver string `json:"resolver"`
	MarketID uint64 `json:"marketId"`
}

type resolverMemoPayload struct {
	Resolver string `json:"resolver"`
	MarketID uint64 `json:"marketId"`
	Memo     string `json:"memo"`
}

type marketPayload struct {
	MarketID uint64 `json:"marketId"`
}

type marketMemoPayload struct {
	MarketID uint64 `json:"marketId"`
	Memo     string `json:"memo"`
}

type resolvePayload struct {
	Resolver  string `json:"resolver"`
	MarketID  uint64 `json:"marketId"`
	ShareType bool   `json:"shareType"`
	Memo      string `json:"memo"`
}

type feePayload struct {
	FeeID     uint64 `json:"feeId"`
	FeeAmount uint64 `json:"feeAmount"`
}

// CreateMarket pays the creation fee to the market contract and creates the
// market in the same transaction. The transfer comes first.
//
// Maps to: transfer(creator, market, fee, memo), createmarket(creator, resolver, ipfs, time_in, resolver_info)
func (b *ActionBuilder) CreateMarket(auth []types.Authorization, input types.CreateMarketInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}

	fee, err := Transfer(b.contracts, b.tokenContracts, auth,
		input.Creator, b.contracts.Market, input.Fee, CreateMarketFeeMemo)
	if err != nil {
		return nil, err
	}
	create, err := newAction(b.contracts.Market, "createmarket", auth, marketDefinitionPayload{
		Creator:      input.Creator,
		Resolver:     input.Resolver,
		Ipfs:         input.Ipfs,
		TimeIn:       input.TimeIn,
		ResolverInfo: input.ResolverInfo,
	})
	if err != nil {
		return nil, err
	}
	return []types.Action{fee, create}, nil
}

// ProposeMarket proposes a market; the resolver accepts or rejects it later.
//
// Maps to: propmarket(creator, resolver, ipfs, time_in, resolver_info)
func (b *ActionBuilder) ProposeMarket(auth []types.Authorization, input types.ProposeMarketInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Market, "propmarket", auth, marketDefinitionPayload{
		Creator:      input.Creator,
		Resolver:     input.Resolver,
		Ipfs:         input.Ipfs,
		TimeIn:       input.TimeIn,
		ResolverInfo: input.ResolverInfo,
	})
}

// Maps to: acceptmarket(resolver, market_id)
func (b *ActionBuilder) AcceptMarket(auth []types.Authorization, input types.AcceptMarketInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Market, "acceptmarket", auth, resolverMarketPayload{
		Resolver: input.Resolver,
		MarketID: input.MarketID,
	})
}

// Maps to: rejectmarket(resolver, market_id, memo)
func (b *ActionBuilder) RejectMarket(auth []types.Authorization, input types.RejectMarketInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Market, "rejectmarket", auth, resolverMemoPayload{
		Resolver: input.Resolver,
		MarketID: input.MarketID,
		Memo:     input.Memo,
	})
}

// Maps to: delmarket(market_id)
func (b *ActionBuilder) DeleteMarket(auth []types.Authorization, input types.DeleteMarketInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Market, "delmarket", auth, marketPayload{MarketID: input.MarketID})
}

// ResolveMarket sets the winning side.
//
// Maps to: mktresolve(resolver, market_id, sharetype, memo)
func (b *ActionBuilder) ResolveMarket(auth []types.Authorization, input types.ResolveMarketInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Market, "mktresolve", auth, resolvePayload{
		Resolver:  input.Resolver,
		MarketID:  input.MarketID,
		ShareType: input.Outcome.ShareType(),
		Memo:      input.Memo,
	})
}

// Maps to: mktinvalid(market_id, memo)
func (b *ActionBuilder) InvalidateMarket(auth []types.Authorization, input types.InvalidateMarketInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Market, "mktinvalid", auth, marketMemoPayload{
		MarketID: input.MarketID,
		Memo:     input.Memo,
	})
}

// Maps to: setresolver(resolver, market_id)
func (b *ActionBuilder) SetResolver(auth []types.Authorization, input types.SetResolverInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Market, "setresolver", auth, resolverMarketPayload{
		Resolver: input.Resolver,
		MarketID: input.MarketID,
	})
}

// Maps to: setfee(fee_id, fee_amount)
func (b *ActionBuilder) SetFee(auth []types.Authorization, input types.SetFeeInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Market, "setfee", auth, feePayload{
		FeeID:     input.FeeID,
		FeeAmount: input.FeeAmount,
	})
}
