package jwtx

import (
	"errors"
	"fmt"
)

// ErrInvalidToken matches every verification failure. Callers that only
// need "authenticated or not" should test for this.
var ErrInvalidToken = errors.New("jwtx: invalid token")

var (
	ErrMalformed  = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrInvalidSig = fmt.Errorf("%w: invalid signature", ErrInvalidToken)
	ErrExpired    = fmt.Errorf("%w: expired", ErrInvalidToken)

	ErrEmptyKey = errors.New("jwtx: empty signing key")
	ErrSigning  = errors.New("jwtx: signing failed")
)
