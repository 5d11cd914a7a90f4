package domain

import (
	"net/netip"

	"github.com/Flarenzy/ipv4kit/internal/ipv4"
)

type ParsedAddress struct {
	Addr      ipv4.Addr
	Canonical string
}

type NetmaskReport struct {
	Mask      ipv4.Addr
	Valid     bool
	PrefixLen int
}

type SubnetInfo struct {
	Prefix      netip.Prefix
	Netmask     ipv4.Addr
	Network     ipv4.Addr
	Broadcast   ipv4.Addr
	FirstUsable ipv4.Addr
	LastUsable  ipv4.Addr
	Usable      uint64
}
