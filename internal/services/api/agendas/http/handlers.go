// Package http provides http transport for agendas
package http

import (
	stdhttp "net/http"

	"urna/internal/modkit/httpkit"
	"urna/internal/services/api/agendas/domain"
	svc "urna/internal/services/api/agendas/service"
)

// Register mounts agenda endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Post("/", httpkit.JSON(h.create))
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.UpdatePautaInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary Create agenda
// @Tags Pautas
// @Accept json
// @Produce json
// @Param payload body domain.CreatePautaInput true "Agenda"
// @Success 201 {object} domain.Pauta "created"
// @Router /pautas [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreatePautaInput) (any, error) {
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(p), nil
}

// @Summary List agendas, newest first
// @Tags Pautas
// @Produce json
// @Success 200 {array} domain.Pauta "ok"
// @Router /pautas [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// @Summary Get agenda by id
// @Tags Pautas
// @Produce json
// @Param id path string true "Agenda id"
// @Success 200 {object} domain.Pauta "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /pautas/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id.String())
}

// @Summary Update agenda
// @Tags Pautas
// @Accept json
// @Produce json
// @Param id path string true "Agenda id"
// @Param payload body domain.UpdatePautaInput true "Agenda"
// @Success 200 {object} domain.Pauta "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /pautas/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdatePautaInput) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id.String(), in)
}

// @Summary Delete agenda without sessions
// @Tags Pautas
// @Produce json
// @Param id path string true "Agenda id"
// @Success 204 "deleted"
// @Failure 409 {object} httpkit.Envelope "agenda has sessions"
// @Router /pautas/{id} [delete]
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
