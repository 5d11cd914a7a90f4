package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Flarenzy/ipv4kit/internal/auth"
	"github.com/Flarenzy/ipv4kit/internal/domain"
	httpSwagger "github.com/swaggo/http-swagger"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger        *slog.Logger
	Health        HealthChecker
	Service       domain.AddressService
	Authenticator auth.Authenticator
}

func NewAPI(logger *slog.Logger, health HealthChecker, service domain.AddressService, authenticator auth.Authenticator) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		Logger:        logger,
		Health:        health,
		Service:       domain.NewLoggingAddressService(logger, service),
		Authenticator: authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.HandleFunc("GET /api/v1/addresses/{value}", a.handleFormatAddress)
	mux.HandleFunc("POST /api/v1/addresses/parse", a.handleParseAddress)
	mux.HandleFunc("POST /api/v1/netmasks/validate", a.handleValidateNetmask)
	mux.HandleFunc("POST /api/v1/subnets/describe", a.handleDescribeSubnet)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return a.requestIDMiddleware(a.authMiddleware(mux))
}
