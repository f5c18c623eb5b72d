package espath

import "errors"

var ErrBadPath = errors.New("bad path")
