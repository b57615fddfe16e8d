// Package contractsapi composes the contract actions of every platform
// operation. Nothing here performs I/O: each builder validates its input and
// returns the ordered actions of one transaction, or an error and no actions.
package contractsapi

import (
	"github.com/pkg/errors"

	"github.com/prediqt/sdk-go/core/types"
	"github.com/prediqt/sdk-go/core/util"
)

// ActionBuilder holds the contract bindings actions are addressed to.
type ActionBuilder struct {
	contracts      types.Contracts
	tokenContracts map[string]string
}

// NewActionBuilder returns a builder for the given bindings. tokenContracts
// maps token symbols to the contract that issues them; it is copied.
func NewActionBuilder(contracts types.Contracts, tokenContracts map[string]string) *ActionBuilder {
	mapping := make(map[string]string, len(tokenContracts))
	for symbol, contract := range tokenContracts {
		mapping[symbol] = contract
	}
	return &ActionBuilder{
		contracts:      contracts,
		tokenContracts: mapping,
	}
}

// Contracts returns the bindings of the builder.
func (b *ActionBuilder) Contracts() types.Contracts {
	return b.contracts
}

// ═══════════════════════════════════════════════════════════════
// HELPER METHODS
// ═══════════════════════════════════════════════════════════════

// newAction turns payload into normalized action data.
func newAction(account, name string, auth []types.Authorization, payload any) (types.Action, error) {
	fields, err := util.StructAsFields(payload)
	if err != nil {
		return types.Action{}, errors.Wrapf(err, "failed to encode %s data", name)
	}
	signers := types.CloneAuthorization(auth)
	if signers == nil {
		signers = []types.Authorization{}
	}
	return types.Action{
		Account:       account,
		Name:          name,
		Authorization: signers,
		Data:          util.NormalizeFields(fields),
	}, nil
}

// single wraps one action into an action list.
func single(account, name string, auth []types.Authorization, payload any) ([]types.Action, error) {
	action, err := newAction(account, name, auth, payload)
	if err != nil {
		return nil, err
	}
	return []types.Action{action}, nil
}

// validateSigners checks the shape of auth. An empty list is accepted; the
// chain rejects the transaction instead.
func validateSigners(auth []types.Authorization) error {
	if len(auth) == 0 {
		return nil
	}
	return types.ValidateAuthorization(auth)
}

// validated checks auth and input before anything is built.
func validated(auth []types.Authorization, input interface{ Validate() error }) error {
	if err := validateSigners(auth); err != nil {
		return err
	}
	return input.Validate()
}

// ═══════════════════════════════════════════════════════════════
// TOKEN TRANSFERS
// ═══════════════════════════════════════════════════════════════

// ResolveTokenContract picks the contract a transfer of quantity is sent to:
// the native token contract for its symbol, else the contract mapped to the
// symbol, else the standard token contract.
func ResolveTokenContract(contracts types.Contracts, mapping map[string]string, quantity string) string {
	symbol := util.AssetSymbol(quantity)
	if symbol == types.NativeTokenSymbol {
		return contracts.IQToken
	}
	if contract, ok := mapping[symbol]; ok && contract != "" {
		return contract
	}
	return contracts.Token
}

type transferPayload struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity string `json:"quantity"`
	Memo     string `json:"memo"`
}

// Transfer builds a token transfer on the contract resolved for quantity.
//
// Maps to: transfer(from, to, quantity, memo)
func Transfer(contracts types.Contracts, mapping map[string]string, auth []types.Authorization,
	from, to, quantity, memo string) (types.Action, error) {
	if from == "" || to == "" {
		return types.Action{}, types.InvalidArgumentf("transfer requires from and to")
	}
	if _, err := util.ParseAsset(quantity); err != nil {
		return types.Action{}, types.InvalidArgumentf("quantity: %v", err)
	}
	return newAction(ResolveTokenContract(contracts, mapping, quantity), "transfer", auth, transferPayload{
		From:     from,
		To:       to,
		Quantity: quantity,
		Memo:     memo,
	})
}

// Transfer builds a standalone token transfer with the builder's bindings.
func (b *ActionBuilder) Transfer(auth []types.Authorization, from, to, quantity, memo string) ([]types.Action, error) {
	if err := validateSigners(auth); err != nil {
		return nil, err
	}
	action, err := Transfer(b.contracts, b.tokenContracts, auth, from, to, quantity, memo)
	if err != nil {
		return nil, err
	}
	return []types.Action{action}, nil
}
