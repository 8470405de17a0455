package http

import "errors"

var errFake = errors.New("backend fault")
