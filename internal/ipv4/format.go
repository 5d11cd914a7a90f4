package ipv4

import (
	"fmt"
	"strconv"
)

// StringSize is the buffer size FormatTo needs: "255.255.255.255" plus a
// terminating NUL.
const StringSize = 16

// FormatTo writes a as "A.B.C.D" followed by a NUL byte into dst and returns
// the length of the text without the NUL. dst must hold at least StringSize
// bytes; shorter buffers are rejected before anything is written.
func FormatTo(dst []byte, a Addr) (int, error) {
	if dst == nil {
		return 0, ErrNilBuffer
	}
	if len(dst) < StringSize {
		return 0, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(dst), StringSize)
	}

	n := len(a.AppendTo(dst[:0]))
	dst[n] = 0
	return n, nil
}

// AppendTo appends the dotted-decimal form of a to b.
func (a Addr) AppendTo(b []byte) []byte {
	b = strconv.AppendUint(b, uint64(a.A()), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64(a.B()), 10)
	b = append(b, '.')
	b = strconv.AppendUint(b, uint64(a.C()), 10)
	b = append(b, '.')
	return strconv.AppendUint(b, uint64(a.D()), 10)
}

func (a Addr) String() string {
	var buf [StringSize]byte
	return string(a.AppendTo(buf[:0]))
}
