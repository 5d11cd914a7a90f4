package ipv4

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a dotted-decimal address. Input that does not format back to
// exactly the same text, such as "192.168.001.1" or " 10.0.0.1", is
// rejected. Every rejection yields Unspecified, which makes a failed parse
// indistinguishable from "0.0.0.0"; use ParseStrict to tell them apart.
func Parse(s string) Addr {
	a, err := ParseStrict(s)
	if err != nil {
		return Unspecified
	}
	return a
}

// ParseStrict is Parse with the reason for a rejection. All returned errors
// match ErrInvalidAddress.
func ParseStrict(s string) (Addr, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return Unspecified, fmt.Errorf("%w: want 4 components, got %d", ErrMalformed, len(parts))
	}

	var octets [4]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Unspecified, fmt.Errorf("%w: component %d is %q", ErrOctetRange, i+1, part)
			}
			return Unspecified, fmt.Errorf("%w: component %d is %q", ErrMalformed, i+1, part)
		}
		if n < 0 || n > 255 {
			return Unspecified, fmt.Errorf("%w: component %d is %d", ErrOctetRange, i+1, n)
		}
		octets[i] = uint8(n)
	}

	a := AddrFrom4(octets[0], octets[1], octets[2], octets[3])

	var check [StringSize]byte
	n, err := FormatTo(check[:], a)
	if err != nil {
		return Unspecified, err
	}
	if string(check[:n]) != s {
		return Unspecified, fmt.Errorf("%w: %q formats as %q", ErrNonCanonical, s, check[:n])
	}

	return a, nil
}
