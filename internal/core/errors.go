package core

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnknownAlgorithm     = errors.New("unknown algorithm")
)
