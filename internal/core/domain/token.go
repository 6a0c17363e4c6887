package domain

import "errors"

var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
