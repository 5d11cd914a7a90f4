package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Flarenzy/ipv4kit/internal/ipv4"
	"go4.org/netipx"
)

type addressService struct{}

func NewAddressService() AddressService {
	return &addressService{}
}

func (s *addressService) FormatAddress(_ context.Context, value uint32) (string, error) {
	var buf [ipv4.StringSize]byte
	n, err := ipv4.FormatTo(buf[:], ipv4.Addr(value))
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

func (s *addressService) ParseAddress(_ context.Context, input ParseAddressInput) (ParsedAddress, error) {
	if !input.Strict {
		addr := ipv4.Parse(input.Text)
		return ParsedAddress{Addr: addr, Canonical: addr.String()}, nil
	}

	addr, err := ipv4.ParseStrict(input.Text)
	if err != nil {
		return ParsedAddress{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return ParsedAddress{Addr: addr, Canonical: addr.String()}, nil
}

func (s *addressService) ValidateNetmask(_ context.Context, input ValidateNetmaskInput) (NetmaskReport, error) {
	mask, err := parseMask(input.Mask, input.Wire)
	if err != nil {
		return NetmaskReport{}, err
	}

	ones, ok := mask.PrefixLen()
	return NetmaskReport{Mask: mask, Valid: ok, PrefixLen: ones}, nil
}

func (s *addressService) DescribeSubnet(_ context.Context, input DescribeSubnetInput) (SubnetInfo, error) {
	addr, err := ipv4.ParseStrict(input.Address)
	if err != nil {
		return SubnetInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	mask, ones, err := parseSubnetMask(input.Netmask)
	if err != nil {
		return SubnetInfo{}, err
	}

	prefix, err := addr.Netip().Prefix(ones)
	if err != nil {
		return SubnetInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	r := netipx.RangeOfPrefix(prefix)
	network, _ := ipv4.FromNetip(r.From())
	broadcast, _ := ipv4.FromNetip(r.To())

	info := SubnetInfo{
		Prefix:      prefix,
		Netmask:     mask,
		Network:     network,
		Broadcast:   broadcast,
		FirstUsable: network,
		LastUsable:  broadcast,
		Usable:      uint64(1) << (32 - ones),
	}

	// /31 point-to-point links and /32 host routes have no network or
	// broadcast address to reserve.
	if ones < 31 {
		info.FirstUsable = network + 1
		info.LastUsable = broadcast - 1
		info.Usable -= 2
	}

	return info, nil
}

func parseMask(text string, wire bool) (ipv4.Addr, error) {
	text = strings.TrimSpace(text)
	if strings.Contains(text, ".") {
		mask, err := ipv4.ParseStrict(text)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return mask, nil
	}

	v, err := strconv.ParseUint(text, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid netmask %q", ErrInvalidInput, text)
	}
	if wire {
		return ipv4.FromWire(uint32(v)), nil
	}
	return ipv4.Addr(v), nil
}

func parseSubnetMask(text string) (ipv4.Addr, int, error) {
	if after, ok := strings.CutPrefix(text, "/"); ok {
		ones, err := strconv.Atoi(after)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: invalid prefix length %q", ErrInvalidInput, after)
		}
		mask, err := ipv4.MaskFromPrefixLen(ones)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return mask, ones, nil
	}

	mask, err := ipv4.ParseStrict(text)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ones, ok := mask.PrefixLen()
	if !ok {
		return 0, 0, fmt.Errorf("%w: netmask %s is not contiguous", ErrInvalidInput, mask)
	}
	return mask, ones, nil
}
