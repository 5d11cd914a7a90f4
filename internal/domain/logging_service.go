package domain

import (
	"context"
	"log/slog"
)

type loggingAddressService struct {
	logger *slog.Logger
	next   AddressService
}

func NewLoggingAddressService(logger *slog.Logger, next AddressService) AddressService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingAddressService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingAddressService) FormatAddress(ctx context.Context, value uint32) (string, error) {
	text, err := s.next.FormatAddress(ctx, value)
	if err != nil {
		s.logger.ErrorContext(ctx, "format address failed", "value", value, "err", err.Error())
		return "", err
	}

	s.logger.DebugContext(ctx, "address formatted", "value", value, "ip", text)
	return text, nil
}

func (s *loggingAddressService) ParseAddress(ctx context.Context, input ParseAddressInput) (ParsedAddress, error) {
	parsed, err := s.next.ParseAddress(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "parse address failed", "text", input.Text, "strict", input.Strict, "err", err.Error())
		return ParsedAddress{}, err
	}

	s.logger.DebugContext(ctx, "address parsed", "text", input.Text, "ip", parsed.Canonical)
	return parsed, nil
}

func (s *loggingAddressService) ValidateNetmask(ctx context.Context, input ValidateNetmaskInput) (NetmaskReport, error) {
	report, err := s.next.ValidateNetmask(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "validate netmask failed", "mask", input.Mask, "wire", input.Wire, "err", err.Error())
		return NetmaskReport{}, err
	}

	if !report.Valid {
		s.logger.InfoContext(ctx, "netmask not contiguous", "mask", report.Mask.String())
	}
	return report, nil
}

func (s *loggingAddressService) DescribeSubnet(ctx context.Context, input DescribeSubnetInput) (SubnetInfo, error) {
	info, err := s.next.DescribeSubnet(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "describe subnet failed", "ip", input.Address, "netmask", input.Netmask, "err", err.Error())
		return SubnetInfo{}, err
	}

	s.logger.DebugContext(ctx, "subnet described", "prefix", info.Prefix.String())
	return info, nil
}
