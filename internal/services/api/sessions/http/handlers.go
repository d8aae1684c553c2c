// Package http provides http transport for voting sessions
package http

import (
	stdhttp "net/http"

	"urna/internal/modkit/httpkit"
	"urna/internal/services/api/sessions/domain"
	svc "urna/internal/services/api/sessions/service"
)

// Register mounts session endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Post("/", httpkit.JSON(h.open))
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.UpdateSessaoInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary Open a voting session for an agenda
// @Tags Sessoes
// @Accept json
// @Produce json
// @Param payload body domain.OpenSessaoInput true "Session"
// @Success 201 {object} domain.Sessao "opened"
// @Failure 404 {object} httpkit.Envelope "agenda not found"
// @Failure 409 {object} httpkit.Envelope "agenda already has an open session"
// @Router /sessoes [post]
func (h *handlers) open(r *stdhttp.Request, in domain.OpenSessaoInput) (any, error) {
	s, err := h.svc.Open(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(s), nil
}

// @Summary List sessions, most recently opened first
// @Tags Sessoes
// @Produce json
// @Success 200 {array} domain.Sessao "ok"
// @Router /sessoes [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// @Summary Get session by id
// @Tags Sessoes
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Sessao "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /sessoes/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id.String())
}

// @Summary Update session target agenda and duration
// @Tags Sessoes
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.UpdateSessaoInput true "Session"
// @Success 200 {object} domain.Sessao "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /sessoes/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateSessaoInput) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id.String(), in)
}

// @Summary Delete session
// @Tags Sessoes
// @Produce json
// @Param id path string true "Session id"
// @Success 204 "deleted"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /sessoes/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), id.String()); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
