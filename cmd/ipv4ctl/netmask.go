package main

import (
	"errors"
	"fmt"

	"github.com/Flarenzy/ipv4kit/internal/domain"
	"github.com/spf13/cobra"
)

var errInvalidNetmask = errors.New("netmask is not contiguous")

func newNetmaskCmd(service serviceFunc) *cobra.Command {
	var wire bool

	cmd := &cobra.Command{
		Use:   "netmask MASK",
		Short: "Check that a netmask is a run of ones followed by zeros",
		Long: "Check that a netmask is a run of ones followed by zeros.\n\n" +
			"MASK is dotted-decimal text or a number. With --wire a number is taken as read from network-ordered memory.\n" +
			"Exits non-zero when the mask is not contiguous.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service(cmd)
			if err != nil {
				return err
			}
			report, err := svc.ValidateNetmask(cmd.Context(), domain.ValidateNetmaskInput{Mask: args[0], Wire: wire})
			if err != nil {
				return err
			}

			if !report.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s invalid\n", report.Mask)
				return errInvalidNetmask
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s valid /%d\n", report.Mask, report.PrefixLen)
			return nil
		},
	}
	cmd.Flags().BoolVar(&wire, "wire", false, "treat a numeric mask as a network byte order word")
	return cmd
}

func newSubnetCmd(service serviceFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "subnet ADDRESS NETMASK",
		Short:   "Show the network, broadcast and usable range of an address",
		Example: "  ipv4ctl subnet 10.1.2.77 255.255.255.192\n  ipv4ctl subnet 10.1.2.77 /26",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service(cmd)
			if err != nil {
				return err
			}
			info, err := svc.DescribeSubnet(cmd.Context(), domain.DescribeSubnetInput{Address: args[0], Netmask: args[1]})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "prefix:    %s\n", info.Prefix)
			fmt.Fprintf(w, "netmask:   %s\n", info.Netmask)
			fmt.Fprintf(w, "network:   %s\n", info.Network)
			fmt.Fprintf(w, "broadcast: %s\n", info.Broadcast)
			fmt.Fprintf(w, "usable:    %s - %s (%d)\n", info.FirstUsable, info.LastUsable, info.Usable)
			return nil
		},
	}
}
