package util

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// decimalCtx is wide enough for any EOSIO asset (int64 amount, precision <= 18).
var decimalCtx = apd.BaseContext.WithPrecision(38)

// Asset is an EOSIO asset string such as "5.0000 IQ": an amount written with a
// fixed number of decimals followed by the token symbol.
type Asset struct {
	Amount    apd.Decimal
	Precision int
	Symbol    string
}

var (
	assetAmount = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	assetSymbol = regexp.MustCompile(`^[A-Z]{1,7}$`)
)

// maxAssetPrecision is the largest precision an EOSIO symbol can carry.
const maxAssetPrecision = 18

// ParseAsset parses "<amount> <SYMBOL>". The amount is unsigned plain
// decimal notation; signs and exponents are rejected.
func ParseAsset(s string) (Asset, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Asset{}, errors.Errorf("invalid asset %q: expected \"<amount> <SYMBOL>\"", s)
	}
	if !assetAmount.MatchString(parts[0]) {
		return Asset{}, errors.Errorf("invalid asset amount %q", parts[0])
	}
	if !assetSymbol.MatchString(parts[1]) {
		return Asset{}, errors.Errorf("invalid asset symbol %q", parts[1])
	}

	amount, _, err := apd.NewFromString(parts[0])
	if err != nil {
		return Asset{}, errors.Wrapf(err, "invalid asset amount %q", parts[0])
	}
	if amount.Form != apd.Finite {
		return Asset{}, errors.Errorf("invalid asset amount %q", parts[0])
	}

	precision := 0
	if dot := strings.IndexByte(parts[0], '.'); dot >= 0 {
		precision = len(parts[0]) - dot - 1
	}
	if precision > maxAssetPrecision {
		return Asset{}, errors.Errorf("invalid asset %q: precision above %d", s, maxAssetPrecision)
	}

	return Asset{
		Amount:    *amount,
		Precision: precision,
		Symbol:    parts[1],
	}, nil
}

// AssetSymbol returns the symbol of a quantity string, or "" when it has none.
// It does not validate the amount.
func AssetSymbol(quantity string) string {
	parts := strings.Fields(quantity)
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}

// MulInt multiplies the amount by n, keeping precision and symbol.
func (a Asset) MulInt(n uint64) (Asset, error) {
	factor := new(apd.Decimal)
	if _, _, err := factor.SetString(strconv.FormatUint(n, 10)); err != nil {
		return Asset{}, errors.WithStack(err)
	}

	out := Asset{Precision: a.Precision, Symbol: a.Symbol}
	if _, err := decimalCtx.Mul(&out.Amount, &a.Amount, factor); err != nil {
		return Asset{}, errors.Wrap(err, "asset multiplication overflow")
	}
	return out, nil
}

// String formats the asset with exactly Precision decimals.
func (a Asset) String() string {
	var q apd.Decimal
	if _, err := decimalCtx.Quantize(&q, &a.Amount, int32(-a.Precision)); err != nil {
		return a.Amount.Text('f') + " " + a.Symbol
	}
	return q.Text('f') + " " + a.Symbol
}
