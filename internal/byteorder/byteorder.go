// Package byteorder converts 32-bit words between network byte order and
// the byte order of the running host.
package byteorder

import (
	"encoding/binary"
	"math/bits"
)

// Swap32 reverses the four bytes of v.
func Swap32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// HostIsLittleEndian reports whether the host stores integers least
// significant byte first.
func HostIsLittleEndian() bool {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], 1)
	return buf[0] == 1
}

// NetworkToHost32 turns a word loaded from network-ordered memory into its
// numeric value.
func NetworkToHost32(word uint32) uint32 {
	if HostIsLittleEndian() {
		return Swap32(word)
	}
	return word
}

// HostToNetwork32 is the inverse of NetworkToHost32.
func HostToNetwork32(v uint32) uint32 {
	return NetworkToHost32(v)
}
