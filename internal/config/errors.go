package config

import "errors"

var (
	ErrMissingName     = errors.New("scenario name is required")
	ErrMissingOp       = errors.New("scenario op is required")
	ErrDuplicateName   = errors.New("duplicate scenario name")
	ErrMalformedVector = errors.New("vector must have 2 or 3 components")
)
