package client

import "errors"

var (
	ErrReadingLocalFile = errors.New("cannot read local file")
	ErrWritingLocalFile = errors.New("cannot write local file")
	ErrNoAdapter        = errors.New("server adapter is not initialised")
)
