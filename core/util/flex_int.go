package util

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// FlexInt is an integer that decodes from either a JSON number or a JSON
// string. Chain nodes render 64-bit integers as strings once they no longer
// fit a double, so table rows mix both forms.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		data = []byte(s)
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid integer %s", data)
	}
	*f = FlexInt(v)
	return nil
}

func (f FlexInt) Int64() int64 {
	return int64(f)
}
