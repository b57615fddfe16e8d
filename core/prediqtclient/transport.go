package prediqtclient

import (
	"context"

	"github.com/prediqt/sdk-go/core/types"
)

// Transport abstracts the chain node the client talks to.
//
// The default implementation (EOSTransport) signs with imported WIF keys and
// talks to a node's HTTP API through eos-go. Custom implementations can route
// through a wallet, a signing service, or a mock for testing:
//
//	client, err := prediqtclient.NewClient(ctx, "",
//	    prediqtclient.WithTransport(myTransport),
//	    prediqtclient.WithAuthorization(auth),
//	)
//
// Implementations must not retry: every failure is returned to the caller as
// is.
type Transport interface {
	// Transact signs and broadcasts tx as a single atomic transaction.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeouts
	//   - tx: The ordered actions to execute
	//   - params: Reference block distance and expiration window
	//
	// Returns:
	//   - The broadcast receipt
	//   - Error if signing fails or the node rejects the transaction
	Transact(ctx context.Context, tx types.Transaction, params types.TransactParams) (*types.TransactResult, error)

	// GetTableRows reads a range of rows of a contract table.
	GetTableRows(ctx context.Context, req types.TableRowsRequest) (*types.TableRowsResponse, error)

	// GetAccount returns the chain record of an account.
	GetAccount(ctx context.Context, name string) (*types.Account, error)

	// GetCurrencyBalance returns the balances of account held in the token
	// contract code, optionally filtered by symbol.
	GetCurrencyBalance(ctx context.Context, account, symbol, code string) ([]string, error)
}
