package ipv4

import (
	"errors"
	"fmt"
)

var (
	ErrNilBuffer      = errors.New("nil destination buffer")
	ErrBufferTooSmall = errors.New("destination buffer too small")
	ErrPrefixLen      = errors.New("prefix length out of range")

	ErrInvalidAddress = errors.New("invalid ipv4 address")
	ErrMalformed      = fmt.Errorf("%w: malformed", ErrInvalidAddress)
	ErrOctetRange     = fmt.Errorf("%w: octet out of range", ErrInvalidAddress)
	ErrNonCanonical   = fmt.Errorf("%w: not in canonical form", ErrInvalidAddress)
)
