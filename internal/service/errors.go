package service

import (
	"errors"

	"github.com/MKhiriev/go-file-drop/internal/validators"
)

var (
	ErrMissingAPIKey = errors.New("missing api key")
	ErrInvalidAPIKey = errors.New("invalid api key")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Validation errors of uploaded file names. They are the validators
// sentinels, re-exported so that transport code depends on service only.
var (
	ErrInvalidFileName     = validators.ErrInvalidFileName
	ErrNoExtension         = validators.ErrNoExtension
	ErrExtensionNotAllowed = validators.ErrExtensionNotAllowed
)
