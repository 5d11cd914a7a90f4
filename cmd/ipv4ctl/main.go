package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Flarenzy/ipv4kit/internal/domain"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:          "ipv4ctl",
		Short:        "Format, parse and validate IPv4 addresses and netmasks",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	service := func(cmd *cobra.Command) (domain.AddressService, error) {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			return nil, fmt.Errorf("parse --log-level: %w", err)
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return domain.NewLoggingAddressService(logger, domain.NewAddressService()), nil
	}

	rootCmd.AddCommand(
		newFormatCmd(service),
		newParseCmd(service),
		newNetmaskCmd(service),
		newSubnetCmd(service),
		newServeCmd(),
	)
	return rootCmd
}

type serviceFunc func(cmd *cobra.Command) (domain.AddressService, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
