package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mindhaven-org/backend/errs"
)

// toggleRequest is the payload for the featured/published/approved/read
// toggle endpoints
type toggleRequest struct {
	Value bool `json:"value"`
}

// parseIDParam reads a numeric route parameter
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}
