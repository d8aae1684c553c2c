// Package http provides http transport for the vote ledger
package http

import (
	stdhttp "net/http"

	"urna/internal/modkit/httpkit"
	"urna/internal/services/api/votes/domain"
	svc "urna/internal/services/api/votes/service"
)

// Register mounts vote endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Post("/", httpkit.JSON(h.cast))
	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.ValidarCPFInput](r, "/validar-cpf", h.validateCPF)
	httpkit.Get(r, "/cpf/{cpf}", h.findByCPF)
	httpkit.Get(r, "/verifica/{cpf}/{sessaoId}", h.hasVoted)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.UpdateVotoInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary Cast a vote on an open session
// @Tags Votos
// @Accept json
// @Produce json
// @Param payload body domain.CastVotoInput true "Vote"
// @Success 201 {object} domain.Voto "cast"
// @Failure 404 {object} httpkit.Envelope "session not found"
// @Failure 409 {object} httpkit.Envelope "session closed or duplicate vote"
// @Failure 422 {object} httpkit.Envelope "invalid CPF"
// @Router /votos [post]
func (h *handlers) cast(r *stdhttp.Request, in domain.CastVotoInput) (any, error) {
	v, err := h.svc.Cast(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(v), nil
}

// @Summary List votes, optionally for one session
// @Tags Votos
// @Produce json
// @Param sessao_id query string false "Session id filter"
// @Success 200 {array} domain.Voto "ok"
// @Failure 404 {object} httpkit.Envelope "session not found"
// @Router /votos [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), r.URL.Query().Get("sessao_id"))
}

// @Summary Get vote by id
// @Tags Votos
// @Produce json
// @Param id path string true "Vote id"
// @Success 200 {object} domain.Voto "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /votos/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id.String())
}

// @Summary Update a vote while its session is open
// @Tags Votos
// @Accept json
// @Produce json
// @Param id path string true "Vote id"
// @Param payload body domain.UpdateVotoInput true "Vote"
// @Success 200 {object} domain.Voto "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Failure 409 {object} httpkit.Envelope "session closed"
// @Router /votos/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateVotoInput) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id.String(), in)
}

// @Summary Delete a vote while its session is open
// @Tags Votos
// @Produce json
// @Param id path string true "Vote id"
// @Success 204 "deleted"
// @Failure 409 {object} httpkit.Envelope "session already closed"
// @Router /votos/{id} [delete]
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

// @Summary Find the most recent vote for a CPF
// @Tags Votos
// @Produce json
// @Param cpf path string true "CPF"
// @Success 200 {object} domain.Voto "ok"
// @Failure 404 {object} httpkit.Envelope "no vote for this CPF"
// @Router /votos/cpf/{cpf} [get]
func (h *handlers) findByCPF(r *stdhttp.Request) (any, error) {
	return h.svc.FindByCPF(r.Context(), httpkit.Param(r, "cpf"))
}

// @Summary Check whether a CPF already voted on a session
// @Tags Votos
// @Produce json
// @Param cpf path string true "CPF"
// @Param sessaoId path string true "Session id"
// @Success 200 {object} domain.JaVotouResult "ok"
// @Failure 404 {object} httpkit.Envelope "session not found"
// @Router /votos/verifica/{cpf}/{sessaoId} [get]
func (h *handlers) hasVoted(r *stdhttp.Request) (any, error) {
	sid, err := httpkit.UUIDParam(r, "sessaoId")
	if err != nil {
		return nil, err
	}
	return h.svc.HasVoted(r.Context(), httpkit.Param(r, "cpf"), sid.String())
}

// @Summary Validate a CPF checksum
// @Tags Votos
// @Accept json
// @Produce json
// @Param payload body domain.ValidarCPFInput true "CPF"
// @Success 200 {object} domain.ValidarCPFResult "ok"
// @Router /votos/validar-cpf [post]
func (h *handlers) validateCPF(r *stdhttp.Request, in domain.ValidarCPFInput) (any, error) {
	return h.svc.ValidateCPF(r.Context(), in), nil
}
