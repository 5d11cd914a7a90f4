package ipv4

import (
	"encoding/binary"
	"net/netip"
	"testing"
)

func TestAddrFrom4Octets(t *testing.T) {
	a := AddrFrom4(192, 168, 1, 2)

	if a != 0xC0A80102 {
		t.Fatalf("expected 0xc0a80102, got %#08x", uint32(a))
	}
	if a.A() != 192 || a.B() != 168 || a.C() != 1 || a.D() != 2 {
		t.Fatalf("unexpected octets: %d %d %d %d", a.A(), a.B(), a.C(), a.D())
	}
	if a.As4() != [4]byte{192, 168, 1, 2} {
		t.Fatalf("unexpected As4: %v", a.As4())
	}
}

func TestAddrFromSlice(t *testing.T) {
	a, ok := AddrFromSlice([]byte{10, 0, 0, 1})
	if !ok || a != AddrFrom4(10, 0, 0, 1) {
		t.Fatalf("expected 10.0.0.1, got %v (ok=%v)", a, ok)
	}

	if _, ok := AddrFromSlice([]byte{10, 0, 0}); ok {
		t.Fatal("expected short slice to be rejected")
	}
}

func TestWireRoundTrip(t *testing.T) {
	a := AddrFrom4(172, 16, 254, 3)

	var mem [4]byte
	binary.NativeEndian.PutUint32(mem[:], a.Wire())
	if mem != [4]byte{172, 16, 254, 3} {
		t.Fatalf("wire word not laid out in network order: %v", mem)
	}
	if got := FromWire(a.Wire()); got != a {
		t.Fatalf("expected %v, got %v", a, got)
	}
}

func TestNetipConversion(t *testing.T) {
	a := AddrFrom4(8, 8, 4, 4)
	if got := a.Netip(); got != netip.MustParseAddr("8.8.4.4") {
		t.Fatalf("unexpected netip addr: %v", got)
	}

	back, ok := FromNetip(netip.MustParseAddr("::ffff:8.8.4.4"))
	if !ok || back != a {
		t.Fatalf("expected mapped address to convert, got %v (ok=%v)", back, ok)
	}

	if _, ok := FromNetip(netip.MustParseAddr("2001:db8::1")); ok {
		t.Fatal("expected ipv6 address to be rejected")
	}
	if _, ok := FromNetip(netip.Addr{}); ok {
		t.Fatal("expected zero netip.Addr to be rejected")
	}
}
