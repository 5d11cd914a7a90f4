package ipv4

import (
	"fmt"
	"math/bits"
)

// NetmaskValid reports whether mask is a run of one bits starting at the most
// significant bit followed only by zero bits. 0.0.0.0 and 255.255.255.255
// are both valid.
func NetmaskValid(mask Addr) bool {
	if mask == 0 {
		return true
	}

	// For a contiguous mask the inverse is 2^n-1, so adding one leaves a
	// single bit that shares nothing with it.
	y := ^uint32(mask)
	z := y + 1
	return z&y == 0
}

// NetmaskValidWire is NetmaskValid for a mask word loaded from
// network-ordered memory.
func NetmaskValidWire(word uint32) bool {
	return NetmaskValid(FromWire(word))
}

// MaskFromPrefixLen returns the netmask with the top ones bits set.
func MaskFromPrefixLen(ones int) (Addr, error) {
	if ones < 0 || ones > 32 {
		return Unspecified, fmt.Errorf("%w: %d", ErrPrefixLen, ones)
	}
	return Addr(^uint32(0) << (32 - ones)), nil
}

// PrefixLen returns the number of leading one bits of a netmask. It reports
// false when m is not a valid netmask.
func (m Addr) PrefixLen() (int, bool) {
	if !NetmaskValid(m) {
		return 0, false
	}
	return bits.OnesCount32(uint32(m)), true
}
