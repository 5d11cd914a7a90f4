package main

import (
	"fmt"
	"strconv"

	"github.com/Flarenzy/ipv4kit/internal/domain"
	"github.com/spf13/cobra"
)

func newFormatCmd(service serviceFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "format VALUE",
		Short:   "Print a packed 32-bit address in dotted-decimal form",
		Example: "  ipv4ctl format 3232235777\n  ipv4ctl format 0xC0A80101",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid address value %q: %w", args[0], err)
			}

			svc, err := service(cmd)
			if err != nil {
				return err
			}
			text, err := svc.FormatAddress(cmd.Context(), uint32(value))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newParseCmd(service serviceFunc) *cobra.Command {
	var (
		strict bool
		hex    bool
	)

	cmd := &cobra.Command{
		Use:   "parse ADDRESS",
		Short: "Parse a dotted-decimal address into its packed value",
		Long: "Parse a dotted-decimal address into its packed value.\n\n" +
			"Input that is not in canonical form prints 0 unless --strict is set, in which case it fails.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service(cmd)
			if err != nil {
				return err
			}
			parsed, err := svc.ParseAddress(cmd.Context(), domain.ParseAddressInput{Text: args[0], Strict: strict})
			if err != nil {
				return err
			}

			if hex {
				fmt.Fprintf(cmd.OutOrStdout(), "0x%08X\n", uint32(parsed.Addr))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), uint32(parsed.Addr))
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of printing 0 for invalid input")
	cmd.Flags().BoolVar(&hex, "hex", false, "print the value in hexadecimal")
	return cmd
}
