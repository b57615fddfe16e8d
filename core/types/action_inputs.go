package types

import (
	"github.com/prediqt/sdk-go/core/util"
)

// ═══════════════════════════════════════════════════════════════
// MARKET LIFECYCLE INPUTS
// ═══════════════════════════════════════════════════════════════

// CreateMarketInput creates an approved market, paying the creation fee in
// the same transaction.
type CreateMarketInput struct {
	Creator      string `validate:"required"`
	Resolver     string `validate:"required"`
	Ipfs         string `validate:"required"` // IPFS hash of the market description
	TimeIn       uint64 `validate:"required"` // Market end, unix seconds
	ResolverInfo string
	Fee          string `validate:"required"` // Creation fee, e.g. "5.0000 IQ"
}

func (c *CreateMarketInput) Validate() error {
	if err := ValidateStruct(c); err != nil {
		return err
	}
	if _, err := util.ParseAsset(c.Fee); err != nil {
		return InvalidArgumentf("fee: %v", err)
	}
	return nil
}

// ProposeMarketInput proposes a market for resolver approval.
type ProposeMarketInput struct {
	Creator      string `validate:"required"`
	Resolver     string `validate:"required"`
	Ipfs         string `validate:"required"`
	TimeIn       uint64 `validate:"required"`
	ResolverInfo string
}

func (p *ProposeMarketInput) Validate() error {
	return ValidateStruct(p)
}

type AcceptMarketInput struct {
	Resolver string `validate:"required"`
	MarketID uint64
}

func (a *AcceptMarketInput) Validate() error {
	return ValidateStruct(a)
}

type RejectMarketInput struct {
	Resolver string `validate:"required"`
	MarketID uint64
	Memo     string
}

func (r *RejectMarketInput) Validate() error {
	return ValidateStruct(r)
}

type DeleteMarketInput struct {
	MarketID uint64
}

func (d *DeleteMarketInput) Validate() error {
	return nil
}

// ResolveMarketInput sets the outcome of a market (resolver only).
type ResolveMarketInput struct {
	Resolver string `validate:"required"`
	MarketID uint64
	Outcome  ShareSide
	Memo     string
}

func (r *ResolveMarketInput) Validate() error {
	if err := r.Outcome.Validate(); err != nil {
		return err
	}
	return ValidateStruct(r)
}

// InvalidateMarketInput marks a market invalid (resolver only).
type InvalidateMarketInput struct {
	MarketID uint64
	Memo     string
}

func (i *InvalidateMarketInput) Validate() error {
	return nil
}

// SetResolverInput changes the resolver of a market (admin only).
type SetResolverInput struct {
	Resolver string `validate:"required"`
	MarketID uint64
}

func (s *SetResolverInput) Validate() error {
	return ValidateStruct(s)
}

// SetFeeInput sets a platform fee (admin only).
type SetFeeInput struct {
	FeeID     uint64
	FeeAmount uint64
}

func (s *SetFeeInput) Validate() error {
	return nil
}

// ═══════════════════════════════════════════════════════════════
// SHARE & ORDER INPUTS
// ═══════════════════════════════════════════════════════════════

type ClaimSharesInput struct {
	User     string `validate:"required"`
	MarketID uint64
}

func (c *ClaimSharesInput) Validate() error {
	return ValidateStruct(c)
}

type TransferSharesInput struct {
	From     string `validate:"required"`
	To       string `validate:"required"`
	Shares   uint64 `validate:"required"`
	Side     ShareSide
	MarketID uint64
}

func (t *TransferSharesInput) Validate() error {
	if err := t.Side.Validate(); err != nil {
		return err
	}
	return ValidateStruct(t)
}

// PlaceLimitOrderInput opens a limit order on one side of a market.
type PlaceLimitOrderInput struct {
	User     string `validate:"required"`
	MarketID uint64
	Side     ShareSide
	Shares   uint64 `validate:"required"`
	Limit    string `validate:"required"` // Price per share, e.g. "0.5500 EOS"
	Referral string
	Buy      bool
}

func (p *PlaceLimitOrderInput) Validate() error {
	if err := p.Side.Validate(); err != nil {
		return err
	}
	if err := ValidateStruct(p); err != nil {
		return err
	}
	if _, err := util.ParseAsset(p.Limit); err != nil {
		return InvalidArgumentf("limit: %v", err)
	}
	return nil
}

type CancelLimitOrderInput struct {
	User     string `validate:"required"`
	MarketID uint64
	Side     ShareSide
	OrderID  uint64
}

func (c *CancelLimitOrderInput) Validate() error {
	if err := c.Side.Validate(); err != nil {
		return err
	}
	return ValidateStruct(c)
}

// BuySharesInput buys shares at Limit per share. With Deposit set, the
// purchase is funded upfront by transferring Limit × Shares to the secondary
// market contract in the same transaction.
type BuySharesInput struct {
	User     string `validate:"required"`
	MarketID uint64
	Side     ShareSide
	Shares   uint64 `validate:"required"`
	Limit    string `validate:"required"`
	Referral string
	Deposit  bool
}

func (b *BuySharesInput) Validate() error {
	if err := b.Side.Validate(); err != nil {
		return err
	}
	if err := ValidateStruct(b); err != nil {
		return err
	}
	if _, err := util.ParseAsset(b.Limit); err != nil {
		return InvalidArgumentf("limit: %v", err)
	}
	return nil
}

// SellSharesInput escrows shares with the secondary market and lists them at
// Limit per share.
type SellSharesInput struct {
	User     string `validate:"required"`
	MarketID uint64
	Side     ShareSide
	Shares   uint64 `validate:"required"`
	Limit    string `validate:"required"`
	Referral string
}

func (s *SellSharesInput) Validate() error {
	if err := s.Side.Validate(); err != nil {
		return err
	}
	if err := ValidateStruct(s); err != nil {
		return err
	}
	if _, err := util.ParseAsset(s.Limit); err != nil {
		return InvalidArgumentf("limit: %v", err)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════
// ACCOUNT, GOVERNANCE & DISPUTE INPUTS
// ═══════════════════════════════════════════════════════════════

type WithdrawInput struct {
	User     string `validate:"required"`
	Quantity string `validate:"required"`
}

func (w *WithdrawInput) Validate() error {
	if err := ValidateStruct(w); err != nil {
		return err
	}
	if _, err := util.ParseAsset(w.Quantity); err != nil {
		return InvalidArgumentf("quantity: %v", err)
	}
	return nil
}

// ProposeMultisigInput proposes a transaction to the multisig contract.
// Trx is sent as-is; it is usually a transaction object with serialized
// action data.
type ProposeMultisigInput struct {
	Proposer     string          `validate:"required"`
	ProposalName string          `validate:"required"`
	Requested    []Authorization `validate:"required,min=1,dive"`
	Trx          any             `validate:"required"`
}

func (p *ProposeMultisigInput) Validate() error {
	return ValidateStruct(p)
}

// DisputeVoteInput casts a dispute-resolution vote for an outcome.
type DisputeVoteInput struct {
	Voter    string `validate:"required"`
	MarketID uint64
	Side     ShareSide
	Memo     string
}

func (d *DisputeVoteInput) Validate() error {
	if err := d.Side.Validate(); err != nil {
		return err
	}
	return ValidateStruct(d)
}
