package httpkit

import (
	"net/http"

	perr "urna/internal/platform/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Param returns the named chi route parameter
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// UUIDParam parses the named route parameter as a uuid
// a missing or malformed value maps to an invalid argument error
func UUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, perr.InvalidArgf("invalid %s: %q", name, raw)
	}
	return id, nil
}
