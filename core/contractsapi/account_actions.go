package contractsapi

import (
	"github.com/prediqt/sdk-go/core/types"
)

type withdrawPayload struct {
	User     string `json:"user"`
	Quantity string `json:"quantity"`
}

type emptyPayload struct{}

type proposePayload struct {
	Proposer     string                `json:"proposer"`
	ProposalName string                `json:"proposalName"`
	Requested    []types.Authorization `json:"requested"`
	Trx          any                   `json:"trx"`
}

type votePayload struct {
	Voter     string `json:"voter"`
	MarketID  uint64 `json:"marketId"`
	ShareType bool   `json:"shareType"`
	Memo      string `json:"memo"`
}

// Withdraw pays out the user's balance held by the market contract.
//
// Maps to: withdraw(user, quantity)
func (b *ActionBuilder) Withdraw(auth []types.Authorization, input types.WithdrawInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Market, "withdraw", auth, withdrawPayload{
		User:     input.User,
		Quantity: input.Quantity,
	})
}

// SyncBank asks the bank contract to settle pending balances.
//
// Maps to: sync()
func (b *ActionBuilder) SyncBank(auth []types.Authorization) ([]types.Action, error) {
	if err := validateSigners(auth); err != nil {
		return nil, err
	}
	return single(b.contracts.Bank, "sync", auth, emptyPayload{})
}

// ProposeMultisig proposes input.Trx to the multisig contract.
//
// Maps to: propose(proposer, proposal_name, requested, trx)
func (b *ActionBuilder) ProposeMultisig(auth []types.Authorization, input types.ProposeMultisigInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.Multisig, "propose", auth, proposePayload{
		Proposer:     input.Proposer,
		ProposalName: input.ProposalName,
		Requested:    types.CloneAuthorization(input.Requested),
		Trx:          input.Trx,
	})
}

// DisputeVote votes for an outcome of a disputed market.
//
// Maps to: vote(voter, market_id, sharetype, memo)
func (b *ActionBuilder) DisputeVote(auth []types.Authorization, input types.DisputeVoteInput) ([]types.Action, error) {
	if err := validated(auth, &input); err != nil {
		return nil, err
	}
	return single(b.contracts.DisputeResolution, "vote", auth, votePayload{
		Voter:     input.Voter,
		MarketID:  input.MarketID,
		ShareType: input.Side.ShareType(),
		Memo:      input.Memo,
	})
}
