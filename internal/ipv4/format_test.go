package ipv4

import (
	"errors"
	"testing"
)

func TestFormatTo(t *testing.T) {
	tests := []struct {
		addr Addr
		want string
	}{
		{AddrFrom4(192, 168, 1, 1), "192.168.1.1"},
		{Unspecified, "0.0.0.0"},
		{AddrFrom4(255, 255, 255, 255), "255.255.255.255"},
		{AddrFrom4(10, 0, 20, 3), "10.0.20.3"},
	}

	for _, tc := range tests {
		buf := make([]byte, StringSize)
		for i := range buf {
			buf[i] = 'x'
		}

		n, err := FormatTo(buf, tc.addr)
		if err != nil {
			t.Fatalf("FormatTo(%#08x): unexpected error %v", uint32(tc.addr), err)
		}
		if got := string(buf[:n]); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
		if buf[n] != 0 {
			t.Fatalf("expected NUL after %q, got %q", tc.want, buf[n])
		}
	}
}

func TestFormatToRejectsNilBuffer(t *testing.T) {
	_, err := FormatTo(nil, AddrFrom4(1, 2, 3, 4))
	if !errors.Is(err, ErrNilBuffer) {
		t.Fatalf("expected ErrNilBuffer, got %v", err)
	}
}

func TestFormatToRejectsSmallBufferWithoutWriting(t *testing.T) {
	// Large enough for this address but below the guaranteed capacity.
	buf := []byte("untouched!")
	_, err := FormatTo(buf, AddrFrom4(1, 2, 3, 4))
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("expected ErrBufferTooSmall, got %v", err)
	}
	if string(buf) != "untouched!" {
		t.Fatalf("buffer was modified: %q", buf)
	}
}

func TestFormatToDoesNotAllocate(t *testing.T) {
	buf := make([]byte, StringSize)
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = FormatTo(buf, AddrFrom4(255, 255, 255, 255))
	})
	if allocs != 0 {
		t.Fatalf("expected no allocations, got %v", allocs)
	}
}

func TestStringMatchesFormatTo(t *testing.T) {
	a := AddrFrom4(100, 64, 0, 9)
	buf := make([]byte, 32)
	n, err := FormatTo(buf, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.String() != string(buf[:n]) {
		t.Fatalf("String %q differs from FormatTo %q", a.String(), buf[:n])
	}
	if got := string(a.AppendTo([]byte("ip="))); got != "ip=100.64.0.9" {
		t.Fatalf("unexpected AppendTo result %q", got)
	}
}
