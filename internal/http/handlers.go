package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Flarenzy/ipv4kit/internal/domain"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "not ready"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.Health != nil {
		if err := a.Health.Ping(ctx); err != nil {
			a.Logger.ErrorContext(ctx, "readiness check failed", "err", err.Error())
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Format a packed address
// @Description Value is the address as an unsigned 32-bit number, decimal or 0x-prefixed hex.
// @Tags addresses
// @Produce json
// @Param value path string true "Packed address"
// @Success 200 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /addresses/{value} [get]
func (a *API) handleFormatAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := r.PathValue("value")
	value, err := strconv.ParseUint(raw, 0, 32)
	if err != nil {
		a.Logger.InfoContext(ctx, "unable to parse packed address", "request_id", RequestIDFromContext(ctx), "value", raw, "err", err.Error())
		a.writeError(w, r, http.StatusBadRequest, "invalid address value")
		return
	}

	text, err := a.Service.FormatAddress(ctx, uint32(value))
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	err = encode(w, r, http.StatusOK, AddressResponse{IP: text, Value: uint32(value)})
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Parse a dotted-decimal address
// @Description Only canonical text is accepted. Non-strict requests get 0.0.0.0 back for invalid input.
// @Tags addresses
// @Accept json
// @Produce json
// @Param payload body ParseAddressRequest true "Address to parse"
// @Success 200 {object} ParseAddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /addresses/parse [post]
func (a *API) handleParseAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[ParseAddressRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.InfoContext(ctx, "unmarshaling parse request", "request_id", RequestIDFromContext(ctx), "err", err.Error())
		a.writeError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	parsed, err := a.Service.ParseAddress(ctx, req.toInput())
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	err = encode(w, r, http.StatusOK, parsedToResponse(parsed))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Validate a netmask
// @Description The netmask is dotted-decimal text or a number. Set wire for a number read from network-ordered memory.
// @Tags netmasks
// @Accept json
// @Produce json
// @Param payload body ValidateNetmaskRequest true "Netmask to validate"
// @Success 200 {object} NetmaskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /netmasks/validate [post]
func (a *API) handleValidateNetmask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[ValidateNetmaskRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.InfoContext(ctx, "unmarshaling netmask request", "request_id", RequestIDFromContext(ctx), "err", err.Error())
		a.writeError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	report, err := a.Service.ValidateNetmask(ctx, req.toInput())
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	err = encode(w, r, http.StatusOK, netmaskToResponse(report))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Describe the subnet of an address
// @Description The netmask is dotted-decimal text or a prefix length written "/N".
// @Tags subnets
// @Accept json
// @Produce json
// @Param payload body DescribeSubnetRequest true "Address and netmask"
// @Success 200 {object} SubnetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /subnets/describe [post]
func (a *API) handleDescribeSubnet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[DescribeSubnetRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.InfoContext(ctx, "unmarshaling subnet request", "request_id", RequestIDFromContext(ctx), "err", err.Error())
		a.writeError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	info, err := a.Service.DescribeSubnet(ctx, req.toInput())
	if err != nil {
		a.respondServiceError(w, r, err)
		return
	}

	err = encode(w, r, http.StatusOK, subnetToResponse(info))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		a.writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		a.writeError(w, r, http.StatusUnauthorized, "unauthorized")
	default:
		a.writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
