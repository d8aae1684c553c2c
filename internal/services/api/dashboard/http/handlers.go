// Package http provides http transport for the dashboard
package http

import (
	stdhttp "net/http"
	"strconv"

	"urna/internal/modkit/httpkit"
	perr "urna/internal/platform/errors"
	svc "urna/internal/services/api/dashboard/service"
)

// Register mounts dashboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/resultado/{pautaId}", h.resultado)
	httpkit.Get(r, "/resumo", h.resumo)
	httpkit.Get(r, "/ranking", h.ranking)
	httpkit.Get(r, "/participacao", h.participacao)
	httpkit.Get(r, "/baixa-participacao", h.baixaParticipacao)
	httpkit.Get(r, "/tendencia", h.tendencia)
}

type handlers struct{ svc svc.Service }

// @Summary Yes/no tally for one agenda
// @Tags Dashboard
// @Produce json
// @Param pautaId path string true "Agenda id"
// @Success 200 {object} domain.ResultadoPauta "ok"
// @Failure 404 {object} httpkit.Envelope "agenda not found"
// @Router /dashboard/resultado/{pautaId} [get]
func (h *handlers) resultado(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "pautaId")
	if err != nil {
		return nil, err
	}
	return h.svc.Resultado(r.Context(), id.String())
}

// @Summary Aggregate dashboard snapshot
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.Resumo "ok"
// @Router /dashboard/resumo [get]
func (h *handlers) resumo(r *stdhttp.Request) (any, error) {
	return h.svc.Resumo(r.Context())
}

// @Summary Agendas ranked by vote count
// @Tags Dashboard
// @Produce json
// @Param limite query int true "Maximum rows, must be positive"
// @Success 200 {array} domain.RankingItem "ok"
// @Failure 422 {object} httpkit.Envelope "invalid limit"
// @Router /dashboard/ranking [get]
func (h *handlers) ranking(r *stdhttp.Request) (any, error) {
	raw := r.URL.Query().Get("limite")
	limite, err := strconv.Atoi(raw)
	if err != nil {
		return nil, perr.InvalidArgf("Limite inválido: %s", raw)
	}
	return h.svc.Ranking(r.Context(), limite)
}

// @Summary Per session turnout
// @Tags Dashboard
// @Produce json
// @Success 200 {array} domain.Participacao "ok"
// @Router /dashboard/participacao [get]
func (h *handlers) participacao(r *stdhttp.Request) (any, error) {
	return h.svc.Participacao(r.Context())
}

// @Summary Sessions under the turnout threshold
// @Tags Dashboard
// @Produce json
// @Success 200 {array} domain.Participacao "ok"
// @Router /dashboard/baixa-participacao [get]
func (h *handlers) baixaParticipacao(r *stdhttp.Request) (any, error) {
	return h.svc.BaixaParticipacao(r.Context())
}

// @Summary Vote volume over time
// @Tags Dashboard
// @Produce json
// @Param inicio query string true "Start date, 2006-01-02"
// @Param fim query string true "End date, inclusive"
// @Param granularidade query string true "DIA, SEMANA or MES"
// @Success 200 {array} domain.TendenciaBucket "ok"
// @Failure 422 {object} httpkit.Envelope "bad dates or granularity"
// @Router /dashboard/tendencia [get]
func (h *handlers) tendencia(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	return h.svc.Tendencia(r.Context(), q.Get("inicio"), q.Get("fim"), q.Get("granularidade"))
}
