package types

import (
	"encoding/json"

	"github.com/prediqt/sdk-go/core/util"
)

// Action is one contract call inside a transaction.
type Action struct {
	Account       string          `json:"account"`
	Name          string          `json:"name"`
	Authorization []Authorization `json:"authorization"`
	Data          util.Fields     `json:"data"`
}

// Transaction is the envelope submitted to the chain. Its actions execute
// atomically, in order.
type Transaction struct {
	Actions []Action `json:"actions"`
}

// TransactParams controls reference block selection and expiration.
type TransactParams struct {
	BlocksBehind  int `json:"blocksBehind" validate:"gte=0"`
	ExpireSeconds int `json:"expireSeconds" validate:"gt=0"`
}

const (
	DefaultBlocksBehind  = 3
	DefaultExpireSeconds = 60
)

func DefaultTransactParams() TransactParams {
	return TransactParams{
		BlocksBehind:  DefaultBlocksBehind,
		ExpireSeconds: DefaultExpireSeconds,
	}
}

// TransactResult is the receipt returned by the broadcast facility.
type TransactResult struct {
	TransactionID string          `json:"transaction_id"`
	Receipt       json.RawMessage `json:"processed,omitempty"`
}
