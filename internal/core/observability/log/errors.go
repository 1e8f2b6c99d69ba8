package log

import "errors"

var ErrUnknownLevel = errors.New("unknown log level")
