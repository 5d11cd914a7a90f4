package domain

type ParseAddressInput struct {
	Text   string
	Strict bool
}

// ValidateNetmaskInput carries a mask either as dotted-decimal text or as a
// number in any base strconv.ParseUint understands with base 0. Wire marks a
// number that was read from network-ordered memory.
type ValidateNetmaskInput struct {
	Mask string
	Wire bool
}

// DescribeSubnetInput takes the netmask as dotted-decimal text or as a
// prefix length written "/N".
type DescribeSubnetInput struct {
	Address string
	Netmask string
}
