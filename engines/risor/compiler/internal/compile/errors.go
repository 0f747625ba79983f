package compile

import "errors"

var ErrCompileFailed = errors.New("risor compilation failed")
