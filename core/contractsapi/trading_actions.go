package contractsapi

import (
	"github.com/pkg/errors"

	"github.com/prediqt/sdk-go/core/types"
	"github.com/prediqt/sdk-go/core/util"
)

// BuySharesDepositMemo is the memo of the funding transfer bundled with
// buyshares.
const BuySharesDepositMemo = "buy shares"

type userMarketPayload struct {
	User     string `json:"user"`
	MarketID uint64 `json:"marketId"`
}

type transferSharesPayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Shares    uint64 `json:"shares"`
	ShareType bool   `json:"shareType"`
	MarketID  uint64 `json:"marketId"`
}

type limitOrderPayload struct {
	User     string `json:"user"`
	MarketID uint64 `json:"marketId"`
	Shares   uint64 `json:"shares"`
	Limit    string `json:"limit"`
	Referral string `json:"referral"`
	Buy      bool   `json:"buy"`
}

type cancelOrderPayload struct {
	User     string `json:"user"`
	MarketID uint64 `json:"marketId"`
	ID       uint64 `json:"id"`
}

type tradePayload struct {
	User      string `json:"user"`
	MarketID  uint64 `json:"marketId"`
	ShareType bool   `json:"shareType"`
	Shares    uint64 `json:"shares"`
	Limit     string `json:"limit"`
	Referral  string `json:"referral"`
}

// Maps to: claimshares(user, market_id)
func (b *ActionBuilder) ClaimShares(auth []types.Authorization, input types.ClaimSharesInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Market, "claimshares", auth, userMarketPayload{
		User:     input.User,
		MarketID: input.MarketID,
	})
}

func (b *ActionBuilder) transferShares(auth []types.Authorization, input types.TransferSharesInput) (types.Action, error) {
	return newAction(b.contracts.Market, "trnsfrshares", auth, transferSharesPayload{
		From:      input.From,
		To:        input.To,
		Shares:    input.Shares,
		ShareType: input.Side.ShareType(),
		MarketID:  input.MarketID,
	})
}

// TransferShares moves shares between accounts.
//
// Maps to: trnsfrshares(from, to, shares, sharetype, market_id)
func (b *ActionBuilder) TransferShares(auth []types.Authorization, input types.TransferSharesInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	action, err := b.transferShares(auth, input)
	if err != nil {
		return nil, err
	}
	return []types.Action{action}, nil
}

// PlaceLimitOrder opens an order on the YES or NO book of a market.
//
// Maps to: lmtorderyes | lmtorderno(user, market_id, shares, limit, referral, buy)
func (b *ActionBuilder) PlaceLimitOrder(auth []types.Authorization, input types.PlaceLimitOrderInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.SecondaryMarket, "lmtorder"+string(input.Side), auth, limitOrderPayload{
		User:     input.User,
		MarketID: input.MarketID,
		Shares:   input.Shares,
		Limit:    input.Limit,
		Referral: input.Referral,
		Buy:      input.Buy,
	})
}

// Maps to: cnclorderyes | cnclorderno(user, market_id, id)
func (b *ActionBuilder) CancelLimitOrder(auth []types.Authorization, input types.CancelLimitOrderInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.SecondaryMarket, "cnclorder"+string(input.Side), auth, cancelOrderPayload{
		User:     input.User,
		MarketID: input.MarketID,
		ID:       input.OrderID,
	})
}

// BuyShares buys shares at input.Limit each. With input.Deposit set, the
// transaction first transfers Limit × Shares to the secondary market.
//
// Maps to: [transfer(user, secondary market, limit × shares, memo)], buyshares(user, market_id, sharetype, shares, limit, referral)
func (b *ActionBuilder) BuyShares(auth []types.Authorization, input types.BuySharesInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}

	actions := make([]types.Action, 0, 2)
	if input.Deposit {
		price, err := util.ParseAsset(input.Limit)
		if err != nil {
			return nil, types.InvalidArgumentf("limit: %v", err)
		}
		total, err := price.MulInt(input.Shares)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compute deposit")
		}
		deposit, err := Transfer(b.contracts, b.tokenContracts, auth,
			input.User, b.contracts.SecondaryMarket, total.String(), BuySharesDepositMemo)
		if err != nil {
			return nil, err
		}
		actions = append(actions, deposit)
	}

	buy, err := newAction(b.contracts.SecondaryMarket, "buyshares", auth, tradePayload{
		User:      input.User,
		MarketID:  input.MarketID,
		ShareType: input.Side.ShareType(),
		Shares:    input.Shares,
		Limit:     input.Limit,
		Referral:  input.Referral,
	})
	if err != nil {
		return nil, err
	}
	return append(actions, buy), nil
}

// SellShares escrows the shares with the secondary market, then lists them.
//
// Maps to: trnsfrshares(user, secondary market, ...), sellshares(user, market_id, sharetype, shares, limit, referral)
func (b *ActionBuilder) SellShares(auth []types.Authorization, input types.SellSharesInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}

	escrow, err := b.transferShares(auth, types.TransferSharesInput{
		From:     input.User,
		To:       b.contracts.SecondaryMarket,
		Shares:   input.Shares,
		Side:     input.Side,
		MarketID: input.MarketID,
	})
	if err != nil {
		return nil, err
	}
	sell, err := newAction(b.contracts.SecondaryMarket, "sellshares", auth, tradePayload{
		User:      input.User,
		MarketID:  input.MarketID,
		ShareType: input.Side.ShareType(),
		Shares:    input.Shares,
		Limit:     input.Limit,
		Referral:  input.Referral,
	})
	if err != nil {
		return nil, err
	}
	return []types.Action{escrow, sell}, nil
}
