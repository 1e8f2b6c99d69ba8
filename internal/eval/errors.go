package eval

import "errors"

var (
	ErrUnknownOp         = errors.New("unknown operation")
	ErrMissingOperand    = errors.New("missing operand")
	ErrExpectationFailed = errors.New("expectation failed")
	ErrWrongExpectation  = errors.New("expectation does not match result kind")
)
