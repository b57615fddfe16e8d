package prediqtclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	eos "github.com/eoscanada/eos-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prediqt/sdk-go/core/types"
)

// EOSTransport implements Transport on top of an eos-go API client.
//
// Transactions reference the block BlocksBehind below the head, expire after
// ExpireSeconds, carry action data encoded with each contract's ABI, and are
// signed with the keys of an eos-go KeyBag. Table and account reads post the
// node's chain API request bodies directly.
type EOSTransport struct {
	api    *eos.API
	logger *zap.Logger
}

// Verify EOSTransport implements Transport interface at compile time
var _ Transport = (*EOSTransport)(nil)

// NewEOSTransport creates a transport for the node at nodeAddress, signing
// with the given WIF private keys. It performs no I/O.
func NewEOSTransport(ctx context.Context, nodeAddress string, keys []string, logger *zap.Logger) (*EOSTransport, error) {
	if nodeAddress == "" {
		return nil, types.InvalidArgumentf("node address is required")
	}
	if len(keys) == 0 {
		return nil, types.InvalidArgumentf("at least one signing key is required")
	}

	keyBag := eos.NewKeyBag()
	for i, key := range keys {
		if err := keyBag.ImportPrivateKey(ctx, key); err != nil {
			return nil, types.InvalidArgumentf("signing key %d: %v", i, err)
		}
	}

	api := eos.New(strings.TrimRight(nodeAddress, "/"))
	api.SetSigner(keyBag)

	if logger == nil {
		logger = zap.NewNop()
	}
	return &EOSTransport{api: api, logger: logger}, nil
}

// API returns the underlying eos-go client.
func (t *EOSTransport) API() *eos.API {
	return t.api
}

func (t *EOSTransport) Transact(ctx context.Context, tx types.Transaction, params types.TransactParams) (*types.TransactResult, error) {
	info, err := t.api.GetInfo(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain info")
	}

	refBlockNum := info.HeadBlockNum
	if uint32(params.BlocksBehind) < refBlockNum {
		refBlockNum -= uint32(params.BlocksBehind)
	}
	refBlock, err := t.api.GetBlockByNum(ctx, refBlockNum)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get reference block %d", refBlockNum)
	}

	actions := make([]*eos.Action, 0, len(tx.Actions))
	abis := map[string]*eos.ABI{}
	for _, action := range tx.Actions {
		encoded, err := t.encodeAction(ctx, abis, action)
		if err != nil {
			return nil, err
		}
		actions = append(actions, encoded)
	}

	eosTx := &eos.Transaction{Actions: actions}
	eosTx.Fill(refBlock.ID, 0, 0, 0)
	eosTx.SetExpiration(time.Duration(params.ExpireSeconds) * time.Second)

	_, packed, err := t.api.SignTransaction(ctx, eosTx, info.ChainID, eos.CompressionNone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	t.logger.Debug("pushing transaction",
		zap.Int("actions", len(actions)),
		zap.Uint32("ref_block", refBlockNum))

	resp, err := t.api.PushTransaction(ctx, packed)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	receipt, err := json.Marshal(resp.Processed)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &types.TransactResult{
		TransactionID: resp.TransactionID,
		Receipt:       receipt,
	}, nil
}

// encodeAction serializes the action data with the contract ABI, fetching
// each ABI once per transaction.
func (t *EOSTransport) encodeAction(ctx context.Context, abis map[string]*eos.ABI, action types.Action) (*eos.Action, error) {
	abi, ok := abis[action.Account]
	if !ok {
		resp, err := t.api.GetABI(ctx, eos.AN(action.Account))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get abi of %s", action.Account)
		}
		abi = &resp.ABI
		abis[action.Account] = abi
	}

	data, err := json.Marshal(action.Data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	packed, err := abi.EncodeAction(eos.ActN(action.Name), data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s::%s", action.Account, action.Name)
	}

	permissions := make([]eos.PermissionLevel, len(action.Authorization))
	for i, auth := range action.Authorization {
		permissions[i] = eos.PermissionLevel{
			Actor:      eos.AN(auth.Actor),
			Permission: eos.PN(auth.Permission),
		}
	}

	return &eos.Action{
		Account:       eos.AN(action.Account),
		Name:          eos.ActN(action.Name),
		Authorization: permissions,
		ActionData:    eos.NewActionDataFromHexData(packed),
	}, nil
}

func (t *EOSTransport) GetTableRows(ctx context.Context, req types.TableRowsRequest) (*types.TableRowsResponse, error) {
	var out types.TableRowsResponse
	if _, err := t.post(ctx, "/v1/chain/get_table_rows", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *EOSTransport) GetAccount(ctx context.Context, name string) (*types.Account, error) {
	var out types.Account
	raw, err := t.post(ctx, "/v1/chain/get_account", map[string]string{"account_name": name}, &out)
	if err != nil {
		return nil, err
	}
	out.Raw = raw
	return &out, nil
}

func (t *EOSTransport) GetCurrencyBalance(ctx context.Context, account, symbol, code string) ([]string, error) {
	assets, err := t.api.GetCurrencyBalance(ctx, eos.AN(account), symbol, eos.AN(code))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	out := make([]string, len(assets))
	for i, asset := range assets {
		out[i] = asset.String()
	}
	return out, nil
}

// post sends body to a chain API endpoint, decodes the answer into out and
// returns the raw answer.
func (t *EOSTransport) post(ctx context.Context, path string, body any, out any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.api.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	t.logger.Debug("chain api request", zap.String("path", path))

	resp, err := t.api.HttpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("%s returned status %d: %s", path, resp.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s response", path)
	}
	return raw, nil
}
