package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFields(t *testing.T) {
	t.Run("shareType uses the lowercase exception", func(t *testing.T) {
		in := Fields{{Key: "marketId", Value: 4}, {Key: "shareType", Value: true}}

		out := NormalizeFields(in)

		assert.Equal(t, Fields{{Key: "market_id", Value: 4}, {Key: "sharetype", Value: true}}, out)
		_, hasSnake := out.Get("share_type")
		assert.False(t, hasSnake)
	})

	t.Run("keys keep insertion order", func(t *testing.T) {
		in := Fields{
			{Key: "user", Value: "alice"},
			{Key: "marketId", Value: 7},
			{Key: "timeIn", Value: 1600000000},
			{Key: "resolverInfo", Value: "x"},
		}

		out := NormalizeFields(in)

		assert.Equal(t, []string{"user", "market_id", "time_in", "resolver_info"}, out.Keys())
	})

	t.Run("empty record", func(t *testing.T) {
		out := NormalizeFields(nil)
		assert.Empty(t, out)
	})

	t.Run("input is not modified", func(t *testing.T) {
		in := Fields{{Key: "marketId", Value: 1}}
		_ = NormalizeFields(in)
		assert.Equal(t, "marketId", in[0].Key)
	})
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"market", "market"},
		{"market_id", "market_id"},
		{"marketId", "market_id"},
		{"feeAmount", "fee_amount"},
		{"proposalName", "proposal_name"},
		{"aBC", "a_b_c"},
		{"Resolver", "resolver"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelToSnake(tt.in))
		})
	}
}

func TestFieldsMarshalJSON(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		f := Fields{{Key: "to", Value: "bob"}, {Key: "from", Value: "alice"}, {Key: "quantity", Value: "1.0000 EOS"}}

		raw, err := json.Marshal(f)
		require.NoError(t, err)
		assert.Equal(t, `{"to":"bob","from":"alice","quantity":"1.0000 EOS"}`, string(raw))
	})

	t.Run("empty marshals to an object", func(t *testing.T) {
		raw, err := json.Marshal(Fields{})
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(raw))

		var nilFields Fields
		raw, err = json.Marshal(nilFields)
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(raw))
	})

	t.Run("nested values", func(t *testing.T) {
		f := Fields{{Key: "requested", Value: []map[string]string{{"actor": "a", "permission": "active"}}}}

		raw, err := json.Marshal(f)
		require.NoError(t, err)
		assert.JSONEq(t, `{"requested":[{"actor":"a","permission":"active"}]}`, string(raw))
	})
}

func TestFieldsWith(t *testing.T) {
	f := Fields{{Key: "a", Value: 1}, {Key: "b", Value: 2}}

	replaced := f.With("a", 3)
	assert.Equal(t, Fields{{Key: "a", Value: 3}, {Key: "b", Value: 2}}, replaced)
	assert.Equal(t, 1, f[0].Value)

	appended := f.With("c", 4)
	assert.Equal(t, []string{"a", "b", "c"}, appended.Keys())
}
