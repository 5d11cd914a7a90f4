// Package ipv4 packs IPv4 addresses into 32-bit values and converts them to
// and from dotted-decimal text.
//
// An Addr holds octet A in its most significant byte and octet D in its least
// significant byte, whatever the byte order of the host. Words read straight
// out of network-ordered memory go through FromWire.
package ipv4

import (
	"encoding/binary"
	"net/netip"

	"github.com/Flarenzy/ipv4kit/internal/byteorder"
)

// Addr is an IPv4 address or netmask.
type Addr uint32

// Unspecified is 0.0.0.0. Parse also returns it for input it rejects.
const Unspecified Addr = 0

// AddrFrom4 packs four octets, a being the most significant.
func AddrFrom4(a, b, c, d uint8) Addr {
	return Addr(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

// AddrFromSlice packs a 4-byte slice in network order. It reports false when
// the slice is not exactly four bytes long.
func AddrFromSlice(b []byte) (Addr, bool) {
	if len(b) != 4 {
		return Unspecified, false
	}
	return Addr(binary.BigEndian.Uint32(b)), true
}

// FromWire converts a word loaded from memory that holds the address in
// network byte order.
func FromWire(word uint32) Addr {
	return Addr(byteorder.NetworkToHost32(word))
}

// FromNetip converts a netip.Addr. IPv4-mapped IPv6 addresses are unmapped;
// any other IPv6 address reports false.
func FromNetip(ip netip.Addr) (Addr, bool) {
	ip = ip.Unmap()
	if !ip.Is4() {
		return Unspecified, false
	}
	b := ip.As4()
	return AddrFrom4(b[0], b[1], b[2], b[3]), true
}

func (a Addr) A() uint8 { return uint8(a >> 24) }
func (a Addr) B() uint8 { return uint8(a >> 16) }
func (a Addr) C() uint8 { return uint8(a >> 8) }
func (a Addr) D() uint8 { return uint8(a) }

func (a Addr) IsUnspecified() bool {
	return a == Unspecified
}

// As4 returns the octets in network order.
func (a Addr) As4() [4]byte {
	return [4]byte{a.A(), a.B(), a.C(), a.D()}
}

// Wire returns the word whose in-memory layout on this host is the address in
// network byte order.
func (a Addr) Wire() uint32 {
	return byteorder.HostToNetwork32(uint32(a))
}

func (a Addr) Netip() netip.Addr {
	return netip.AddrFrom4(a.As4())
}
