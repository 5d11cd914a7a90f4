// Package app wires configuration, logging and the HTTP API together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Flarenzy/ipv4kit/internal/auth"
	"github.com/Flarenzy/ipv4kit/internal/domain"
	apihttp "github.com/Flarenzy/ipv4kit/internal/http"
	"github.com/Flarenzy/ipv4kit/internal/ipv4"
)

type Config struct {
	Port         string
	LogLevel     slog.Level
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	AuthEnabled  bool
	AuthIssuer   string
	AuthJWKSURL  string
	AuthAudience string
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Port:         os.Getenv("PORT"),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		AuthIssuer:   os.Getenv("AUTH_ISSUER"),
		AuthJWKSURL:  os.Getenv("AUTH_JWKS_URL"),
		AuthAudience: os.Getenv("AUTH_AUDIENCE"),
	}

	if cfg.Port == "" {
		cfg.Port = "4040"
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
		}
	}

	if v := os.Getenv("AUTH_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse AUTH_ENABLED: %w", err)
		}
		cfg.AuthEnabled = enabled
	}

	return cfg, nil
}

func NewLogger(cfg Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		JWKSURL:  cfg.AuthJWKSURL,
		Audience: cfg.AuthAudience,
	})
}

// selfCheck reports ready once the address codec round-trips a known
// address and accepts a known netmask.
type selfCheck struct{}

func (selfCheck) Ping(context.Context) error {
	want := ipv4.AddrFrom4(192, 168, 1, 1)
	if got := ipv4.Parse(want.String()); got != want {
		return fmt.Errorf("round trip of %s gave %s", want, got)
	}
	if !ipv4.NetmaskValid(ipv4.AddrFrom4(255, 255, 255, 0)) {
		return errors.New("netmask check rejected 255.255.255.0")
	}
	return nil
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve blocks until ctx is done and then shuts the server down. It takes
// ownership of listener.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := NewLogger(cfg)

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		_ = listener.Close()
		return err
	}
	if authenticator != nil {
		logger.Info("auth enabled", "issuer", cfg.AuthIssuer, "audience", cfg.AuthAudience)
	}

	api := apihttp.NewAPI(logger, selfCheck{}, domain.NewAddressService(), authenticator)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
