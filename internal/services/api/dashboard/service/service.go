// Package service contains dashboard aggregation workflows
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	agendasdomain "urna/internal/services/api/agendas/domain"
	"urna/internal/services/api/dashboard/domain"
	"urna/internal/services/api/dashboard/repo"
)

// DefaultEligibleVoters is used when no population size is configured
const DefaultEligibleVoters = 100

// recentPautasLimit bounds the landing page agenda list
const recentPautasLimit = 10

// lowTurnoutThreshold separates low participation sessions, in percent
const lowTurnoutThreshold = 50.0

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the dashboard service
type Svc struct {
	Repo    repo.Repo
	Agendas agendasdomain.ReaderPort

	eligible int64
	now      func() time.Time
}

// New constructs a dashboard service
// eligible is the voting population used for turnout percentages
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], agendas agendasdomain.ReaderPort, eligible int) *Svc {
	if db == nil {
		panic("dashboard.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("dashboard.Service requires a non nil Repo binder")
	}
	if agendas == nil {
		panic("dashboard.Service requires the agendas reader port")
	}
	if eligible <= 0 {
		eligible = DefaultEligibleVoters
	}
	return &Svc{Repo: binder.Bind(db), Agendas: agendas, eligible: int64(eligible), now: time.Now}
}

// Resultado tallies yes/no for an agenda across all of its sessions
func (s *Svc) Resultado(ctx context.Context, pautaID string) (domain.ResultadoPauta, error) {
	p, err := s.Agendas.Get(ctx, pautaID)
	if err != nil {
		return domain.ResultadoPauta{}, err
	}
	sim, nao, err := s.Repo.TallyForPauta(ctx, pautaID)
	if err != nil {
		return domain.ResultadoPauta{}, err
	}
	return domain.ResultadoPauta{
		PautaID: p.ID,
		Titulo:  p.Titulo,
		Sim:     sim,
		Nao:     nao,
		Total:   sim + nao,
	}, nil
}

// Resumo builds the aggregate snapshot for the landing dashboard
func (s *Svc) Resumo(ctx context.Context) (domain.Resumo, error) {
	at := s.now().UTC()

	counts, err := s.Repo.Counts(ctx, at)
	if err != nil {
		return domain.Resumo{}, err
	}
	recent, err := s.Repo.RecentPautas(ctx, recentPautasLimit)
	if err != nil {
		return domain.Resumo{}, err
	}
	active, err := s.Repo.ActiveSessions(ctx, at)
	if err != nil {
		return domain.Resumo{}, err
	}
	for i := range active {
		active[i].TempoRestante = RemainingLabel(active[i].ClosesAt.Sub(at))
	}

	var pctSim, pctNao float64
	if counts.Votos > 0 {
		pctSim = float64(counts.VotosSim) / float64(counts.Votos) * 100
		pctNao = 100 - pctSim
	}

	return domain.Resumo{
		TotalPautas:       counts.Pautas,
		TotalSessoes:      counts.Sessoes,
		SessoesAbertas:    counts.SessoesAbertas,
		SessoesEncerradas: counts.Sessoes - counts.SessoesAbertas,
		TotalVotos:        counts.Votos,
		PercentualSim:     pctSim,
		PercentualNao:     pctNao,
		PautasRecentes:    recent,
		SessoesAtivas:     active,
	}, nil
}

// Ranking returns the top agendas by accumulated votes
func (s *Svc) Ranking(ctx context.Context, limite int) ([]domain.RankingItem, error) {
	if limite <= 0 {
		return nil, perr.InvalidArgf("Limite deve ser maior que zero")
	}
	return s.Repo.Ranking(ctx, limite)
}

// Participacao reports per session turnout against the eligible population
func (s *Svc) Participacao(ctx context.Context) ([]domain.Participacao, error) {
	return s.turnout(ctx, func(float64) bool { return true })
}

// BaixaParticipacao reports only the sessions under the turnout threshold
func (s *Svc) BaixaParticipacao(ctx context.Context) ([]domain.Participacao, error) {
	return s.turnout(ctx, func(pct float64) bool { return pct < lowTurnoutThreshold })
}

func (s *Svc) turnout(ctx context.Context, keep func(float64) bool) ([]domain.Participacao, error) {
	rows, err := s.Repo.SessionTurnout(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Participacao, 0, len(rows))
	for _, sv := range rows {
		pct := float64(sv.Votos) / float64(s.eligible) * 100
		if !keep(pct) {
			continue
		}
		out = append(out, domain.Participacao{
			SessaoID:   sv.SessaoID,
			PautaID:    sv.PautaID,
			Titulo:     sv.Titulo,
			TotalVotos: sv.Votos,
			Percentual: pct,
		})
	}
	return out, nil
}

// Tendencia buckets vote volume between two dates at the requested granularity
func (s *Svc) Tendencia(ctx context.Context, inicio, fim, granularidade string) ([]domain.TendenciaBucket, error) {
	const layout = "2006-01-02"

	start, err := time.Parse(layout, inicio)
	if err != nil {
		return nil, perr.InvalidArgf("Data inicial inválida: %s", inicio)
	}
	end, err := time.Parse(layout, fim)
	if err != nil {
		return nil, perr.InvalidArgf("Data final inválida: %s", fim)
	}
	if start.After(end) {
		return nil, perr.InvalidArgf("Data inicial posterior à data final")
	}
	switch granularidade {
	case domain.GranularidadeDia, domain.GranularidadeSemana, domain.GranularidadeMes:
	default:
		return nil, perr.InvalidArgf("Granularidade inválida: %s", granularidade)
	}

	// the end date is inclusive, so query up to the following midnight
	votes, err := s.Repo.CastVotes(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	buckets := map[string]*domain.TendenciaBucket{}
	for _, v := range votes {
		label := BucketLabel(v.At.UTC(), granularidade)
		b := buckets[label]
		if b == nil {
			b = &domain.TendenciaBucket{Periodo: label}
			buckets[label] = b
		}
		if v.Voto {
			b.Sim++
		} else {
			b.Nao++
		}
	}

	out := make([]domain.TendenciaBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Periodo < out[j].Periodo })
	return out, nil
}

// BucketLabel renders the bucket key for one instant at a granularity
func BucketLabel(t time.Time, granularidade string) string {
	switch granularidade {
	case domain.GranularidadeSemana:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case domain.GranularidadeMes:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// RemainingLabel renders remaining time the way the dashboard shows it
// whole minutes floored, anything under a minute collapses to one label
func RemainingLabel(d time.Duration) string {
	if d < time.Minute {
		return "Menos de 1 minuto"
	}
	m := int64(d / time.Minute)
	if m == 1 {
		return "1 minuto"
	}
	return fmt.Sprintf("%d minutos", m)
}
