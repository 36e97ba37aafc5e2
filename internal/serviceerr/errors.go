package serviceerr

import "errors"

var ErrNotFound = errors.New("not found")
var ErrAuthRejected = errors.New("authentication rejected")
