package ipv4

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Addr
	}{
		{"valid", "192.168.1.1", AddrFrom4(192, 168, 1, 1)},
		{"all ones", "255.255.255.255", AddrFrom4(255, 255, 255, 255)},
		{"zero", "0.0.0.0", Unspecified},
		{"octet out of range", "256.1.1.1", Unspecified},
		{"too few components", "192.168.1", Unspecified},
		{"too many components", "1.2.3.4.5", Unspecified},
		{"leading zero", "192.168.001.1", Unspecified},
		{"leading space", " 10.0.0.1", Unspecified},
		{"trailing garbage", "10.0.0.1abc", Unspecified},
		{"plus sign", "+10.0.0.1", Unspecified},
		{"negative", "10.-1.0.1", Unspecified},
		{"negative zero", "-0.0.0.1", Unspecified},
		{"empty component", "10..0.1", Unspecified},
		{"empty", "", Unspecified},
		{"huge", "99999999999999999999.0.0.1", Unspecified},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Parse(tc.in); got != tc.want {
				t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseStrictReportsCause(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"192.168.1", ErrMalformed},
		{"a.b.c.d", ErrMalformed},
		{"256.1.1.1", ErrOctetRange},
		{"1.2.3.-4", ErrOctetRange},
		{"99999999999999999999.0.0.1", ErrOctetRange},
		{"192.168.001.1", ErrNonCanonical},
		{"+1.2.3.4", ErrNonCanonical},
	}

	for _, tc := range tests {
		_, err := ParseStrict(tc.in)
		if !errors.Is(err, tc.want) {
			t.Fatalf("ParseStrict(%q): expected %v, got %v", tc.in, tc.want, err)
		}
		if !errors.Is(err, ErrInvalidAddress) {
			t.Fatalf("ParseStrict(%q): expected error to match ErrInvalidAddress, got %v", tc.in, err)
		}
	}
}

func TestParseStrictAcceptsUnspecified(t *testing.T) {
	a, err := ParseStrict("0.0.0.0")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !a.IsUnspecified() {
		t.Fatalf("expected unspecified address, got %v", a)
	}
}

func TestParseRoundTripEveryOctetPosition(t *testing.T) {
	for v := 0; v <= 255; v++ {
		o := uint8(v)
		for _, a := range []Addr{
			AddrFrom4(o, 0, 0, 0),
			AddrFrom4(1, o, 2, 3),
			AddrFrom4(4, 5, o, 6),
			AddrFrom4(7, 8, 9, o),
			AddrFrom4(o, o, o, o),
		} {
			if got := Parse(a.String()); got != a {
				t.Fatalf("round trip of %v gave %v", a, got)
			}
		}
	}
}

func TestParseRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		a := Addr(r.Uint32())
		if got := Parse(a.String()); got != a {
			t.Fatalf("round trip of %v gave %v", a, got)
		}
	}
}
