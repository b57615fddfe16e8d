package types

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidArgument is wrapped by every error raised by local validation,
// before anything is built or sent.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentf returns an error wrapping ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// ValidateStruct runs the `validate` tags of s and reports failures as
// invalid arguments.
func ValidateStruct(s any) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}
	return nil
}
