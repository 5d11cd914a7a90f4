package domain

import "context"

type AddressService interface {
	FormatAddress(ctx context.Context, value uint32) (string, error)
	ParseAddress(ctx context.Context, input ParseAddressInput) (ParsedAddress, error)
	ValidateNetmask(ctx context.Context, input ValidateNetmaskInput) (NetmaskReport, error)
	DescribeSubnet(ctx context.Context, input DescribeSubnetInput) (SubnetInfo, error)
}
