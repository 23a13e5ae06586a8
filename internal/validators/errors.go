package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidFileName     = errors.New("invalid file name")
	ErrNoExtension         = errors.New("file has no extension")
	ErrExtensionNotAllowed = errors.New("file extension is not allowed")
)
