package prediqtclient

import (
	"context"

	"github.com/prediqt/sdk-go/core/types"
)

// submitBuilt submits the actions of build, signed by the current signer
// list. Nothing is sent when build fails.
func (c *Client) submitBuilt(ctx context.Context, build func(auth []types.Authorization) ([]types.Action, error)) (*types.TransactResult, error) {
	actions, err := build(c.Authorization())
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx, actions)
}

// ═══════════════════════════════════════════════════════════════
// MARKET LIFECYCLE
// ═══════════════════════════════════════════════════════════════

// CreateMarket pays the creation fee and creates the market atomically.
func (c *Client) CreateMarket(ctx context.Context, input types.CreateMarketInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.CreateMarket(auth, input)
	})
}

func (c *Client) ProposeMarket(ctx context.Context, input types.ProposeMarketInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.ProposeMarket(auth, input)
	})
}

func (c *Client) AcceptMarket(ctx context.Context, input types.AcceptMarketInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.AcceptMarket(auth, input)
	})
}

func (c *Client) RejectMarket(ctx context.Context, input types.RejectMarketInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.RejectMarket(auth, input)
	})
}

func (c *Client) DeleteMarket(ctx context.Context, input types.DeleteMarketInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.DeleteMarket(auth, input)
	})
}

func (c *Client) ResolveMarket(ctx context.Context, input types.ResolveMarketInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.ResolveMarket(auth, input)
	})
}

func (c *Client) InvalidateMarket(ctx context.Context, input types.InvalidateMarketInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.InvalidateMarket(auth, input)
	})
}

func (c *Client) SetResolver(ctx context.Context, input types.SetResolverInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.SetResolver(auth, input)
	})
}

func (c *Client) SetFee(ctx context.Context, input types.SetFeeInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.SetFee(auth, input)
	})
}

// ═══════════════════════════════════════════════════════════════
// SHARES & ORDERS
// ═══════════════════════════════════════════════════════════════

func (c *Client) ClaimShares(ctx context.Context, input types.ClaimSharesInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.ClaimShares(auth, input)
	})
}

func (c *Client) TransferShares(ctx context.Context, input types.TransferSharesInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.TransferShares(auth, input)
	})
}

func (c *Client) PlaceLimitOrder(ctx context.Context, input types.PlaceLimitOrderInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.PlaceLimitOrder(auth, input)
	})
}

func (c *Client) CancelLimitOrder(ctx context.Context, input types.CancelLimitOrderInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.CancelLimitOrder(auth, input)
	})
}

// BuyShares buys shares, funding the purchase in the same transaction when
// input.Deposit is set.
func (c *Client) BuyShares(ctx context.Context, input types.BuySharesInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.BuyShares(auth, input)
	})
}

// SellShares escrows and lists shares in one transaction.
func (c *Client) SellShares(ctx context.Context, input types.SellSharesInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.SellShares(auth, input)
	})
}

// ═══════════════════════════════════════════════════════════════
// ACCOUNT, GOVERNANCE & DISPUTES
// ═══════════════════════════════════════════════════════════════

// Transfer sends quantity to another account through the token contract
// that issues it.
func (c *Client) Transfer(ctx context.Context, from, to, quantity, memo string) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.Transfer(auth, from, to, quantity, memo)
	})
}

func (c *Client) Withdraw(ctx context.Context, input types.WithdrawInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.Withdraw(auth, input)
	})
}

func (c *Client) SyncBank(ctx context.Context) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, c.builder.SyncBank)
}

func (c *Client) ProposeMultisig(ctx context.Context, input types.ProposeMultisigInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.ProposeMultisig(auth, input)
	})
}

func (c *Client) DisputeVote(ctx context.Context, input types.DisputeVoteInput) (*types.TransactResult, error) {
	return c.submitBuilt(ctx, func(auth []types.Authorization) ([]types.Action, error) {
		return c.builder.DisputeVote(auth, input)
	})
}
