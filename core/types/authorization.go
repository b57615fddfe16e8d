package types

import (
	"bytes"
	"encoding/json"
)

// Authorization is a single signer of outgoing actions.
type Authorization struct {
	Actor      string `json:"actor" validate:"required"`
	Permission string `json:"permission" validate:"required"`
}

// ValidateAuthorization checks every element of auth. It never mutates auth.
func ValidateAuthorization(auth []Authorization) error {
	if auth == nil {
		return InvalidArgumentf("authorization must be a list")
	}
	for i := range auth {
		if err := ValidateStruct(&auth[i]); err != nil {
			return InvalidArgumentf("authorization item %d: actor and permission are required", i)
		}
	}
	return nil
}

// CloneAuthorization returns an independent copy of auth.
func CloneAuthorization(auth []Authorization) []Authorization {
	if auth == nil {
		return nil
	}
	out := make([]Authorization, len(auth))
	copy(out, auth)
	return out
}

// ParseAuthorization decodes an authorization list from raw JSON. The input
// must be an array whose items are objects with exactly the string fields
// "actor" and "permission"; any other shape rejects the whole list.
func ParseAuthorization(raw []byte) ([]Authorization, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, InvalidArgumentf("authorization must be an array")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, InvalidArgumentf("authorization must be an array: %v", err)
	}

	auth := make([]Authorization, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, InvalidArgumentf("authorization item %d must be an object", i)
		}

		var record map[string]json.RawMessage
		if err := json.Unmarshal(item, &record); err != nil {
			return nil, InvalidArgumentf("authorization item %d must be an object: %v", i, err)
		}
		if len(record) != 2 {
			return nil, InvalidArgumentf("authorization item %d must have exactly actor and permission", i)
		}

		var a Authorization
		for key, dst := range map[string]*string{"actor": &a.Actor, "permission": &a.Permission} {
			value, ok := record[key]
			if !ok {
				return nil, InvalidArgumentf("authorization item %d is missing %s", i, key)
			}
			if err := json.Unmarshal(value, dst); err != nil {
				return nil, InvalidArgumentf("authorization item %d: %s must be a string", i, key)
			}
		}
		auth = append(auth, a)
	}

	return auth, nil
}
