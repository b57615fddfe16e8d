package util

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Field is a single key/value pair of an action payload.
type Field struct {
	Key   string
	Value any
}

// Fields is an insertion-ordered record. It marshals to a JSON object whose
// keys keep the order in which they were added, which is the order the
// contract ABI declares them in.
type Fields []Field

// Get returns the value stored under key.
func (f Fields) Get(key string) (any, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (f Fields) Keys() []string {
	keys := make([]string, len(f))
	for i, field := range f {
		keys[i] = field.Key
	}
	return keys
}

// With returns a copy of f with key set to value. An existing key keeps its
// position.
func (f Fields) With(key string, value any) Fields {
	out := make(Fields, len(f), len(f)+1)
	copy(out, f)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Field{Key: key, Value: value})
}

func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal field %s", field.Key)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
