// Package prediqtclient submits platform actions to the chain and reads
// contract tables.
package prediqtclient

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prediqt/sdk-go/core/contractsapi"
	"github.com/prediqt/sdk-go/core/logging"
	"github.com/prediqt/sdk-go/core/types"
)

// Client owns the contract bindings and the signer list of outgoing
// transactions. Bindings are fixed at construction; the signer list can be
// replaced at any time and is guarded by a mutex, so a Submit always sees
// either the old or the new list.
type Client struct {
	nodeAddress    string
	transport      Transport
	builder        *contractsapi.ActionBuilder
	contracts      types.Contracts
	tokenContracts map[string]string
	params         types.TransactParams
	signingKeys    []string
	logger         *zap.Logger

	authMu sync.RWMutex
	auth   []types.Authorization
}

var _ types.IPrediqt = (*Client)(nil)

type Option func(*Client)

// NewClient creates a client for the node at nodeAddress. Without
// WithTransport, an EOSTransport signing with the keys of WithSigningKeys is
// created; having neither is an invalid argument.
func NewClient(ctx context.Context, nodeAddress string, options ...Option) (*Client, error) {
	c := &Client{
		nodeAddress: nodeAddress,
		contracts:   types.DefaultContracts(),
		params:      types.DefaultTransactParams(),
		logger:      logging.Logger,
		auth:        []types.Authorization{},
	}
	for _, option := range options {
		option(c)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.transport == nil {
		if len(c.signingKeys) == 0 {
			return nil, types.InvalidArgumentf("a signing key or a transport is required")
		}
		transport, err := NewEOSTransport(ctx, nodeAddress, c.signingKeys, c.logger)
		if err != nil {
			return nil, err
		}
		c.transport = transport
	}
	c.signingKeys = nil

	c.builder = contractsapi.NewActionBuilder(c.contracts, c.tokenContracts)
	return c, nil
}

func (c *Client) Validate() error {
	if err := types.ValidateStruct(&c.contracts); err != nil {
		return err
	}
	if err := types.ValidateStruct(&c.params); err != nil {
		return err
	}
	return types.ValidateAuthorization(c.auth)
}

// WithTransport replaces the default EOSTransport.
func WithTransport(transport Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithSigningKeys sets the WIF private keys the default transport signs with.
func WithSigningKeys(keys ...string) Option {
	return func(c *Client) {
		c.signingKeys = append([]string(nil), keys...)
	}
}

// WithAuthorization sets the initial signer list.
func WithAuthorization(auth []types.Authorization) Option {
	return func(c *Client) {
		c.auth = types.CloneAuthorization(auth)
		if c.auth == nil {
			c.auth = []types.Authorization{}
		}
	}
}

// WithContracts overrides contract bindings; empty fields keep their default.
func WithContracts(override types.Contracts) Option {
	return func(c *Client) {
		c.contracts = c.contracts.Merge(override)
	}
}

// WithTokenContracts maps token symbols to the contracts that issue them.
func WithTokenContracts(mapping map[string]string) Option {
	return func(c *Client) {
		c.tokenContracts = mapping
	}
}

// WithTransactParams overrides the default 3 blocks behind, 60 seconds expiry.
func WithTransactParams(params types.TransactParams) Option {
	return func(c *Client) {
		c.params = params
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func (c *Client) NodeAddress() string {
	return c.nodeAddress
}

func (c *Client) Contracts() types.Contracts {
	return c.contracts
}

func (c *Client) TransactParams() types.TransactParams {
	return c.params
}

// Builder returns the action builder bound to the client's contracts.
func (c *Client) Builder() *contractsapi.ActionBuilder {
	return c.builder
}

// ═══════════════════════════════════════════════════════════════
// AUTHORIZATION
// ═══════════════════════════════════════════════════════════════

func (c *Client) Authorization() []types.Authorization {
	c.authMu.RLock()
	defer c.authMu.RUnlock()
	return types.CloneAuthorization(c.auth)
}

// SetAuthorization replaces the signer list. On error the current list is
// left untouched.
func (c *Client) SetAuthorization(auth []types.Authorization) error {
	if err := types.ValidateAuthorization(auth); err != nil {
		return err
	}
	clone := types.CloneAuthorization(auth)

	c.authMu.Lock()
	defer c.authMu.Unlock()
	c.auth = clone
	return nil
}

// SetAuthorizationJSON replaces the signer list from raw JSON, which must be
// an array of {"actor", "permission"} objects. Any other shape rejects the
// whole update.
func (c *Client) SetAuthorizationJSON(raw []byte) error {
	auth, err := types.ParseAuthorization(raw)
	if err != nil {
		return err
	}
	return c.SetAuthorization(auth)
}

func (c *Client) ResetAuthorization() {
	c.authMu.Lock()
	defer c.authMu.Unlock()
	c.auth = []types.Authorization{}
}

// ═══════════════════════════════════════════════════════════════
// TRANSPORT
// ═══════════════════════════════════════════════════════════════

// Submit sends actions as one transaction with the client's transaction
// parameters. Failures are returned as is; nothing is retried.
func (c *Client) Submit(ctx context.Context, actions []types.Action) (*types.TransactResult, error) {
	if len(actions) == 0 {
		return nil, types.InvalidArgumentf("at least one action is required")
	}

	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = action.Account + "::" + action.Name
	}
	c.logger.Debug("submitting transaction", zap.Strings("actions", names))

	result, err := c.transport.Transact(ctx, types.Transaction{Actions: actions}, c.params)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return result, nil
}

// ReadTable reads a range of rows. There is no paging state: move
// query.LowerBound to read the next page.
func (c *Client) ReadTable(ctx context.Context, contract, scope, table string, query types.TableQuery) (*types.TableRowsResponse, error) {
	if contract == "" || scope == "" || table == "" {
		return nil, types.InvalidArgumentf("contract, scope and table are required")
	}
	if query.Limit < 0 {
		return nil, types.InvalidArgumentf("limit cannot be negative")
	}

	c.logger.Debug("reading table",
		zap.String("contract", contract),
		zap.String("scope", scope),
		zap.String("table", table))

	resp, err := c.transport.GetTableRows(ctx, types.TableRowsRequest{
		Code:       contract,
		Scope:      scope,
		Table:      table,
		JSON:       true,
		Limit:      query.Limit,
		LowerBound: query.LowerBound,
		UpperBound: query.UpperBound,
		TableKey:   query.TableKey,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if resp == nil {
		resp = &types.TableRowsResponse{}
	}
	if resp.Rows == nil {
		resp.Rows = []json.RawMessage{}
	}
	return resp, nil
}
