package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func encode[T any](w http.ResponseWriter, _ *http.Request, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	err := encode(w, r, status, ErrorResponse{Error: msg})
	if err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "request_id", RequestIDFromContext(r.Context()), "err", err.Error())
	}
}
