// Package repo provides postgres access for dashboard aggregates
// queries join across pautas, sessoes and votos directly
package repo

import (
	"context"
	"time"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	"urna/internal/services/api/dashboard/domain"
)

// Repo is the read only aggregate surface for the dashboard
type Repo interface {
	TallyForPauta(ctx context.Context, pautaID string) (sim, nao int64, err error)
	Counts(ctx context.Context, at time.Time) (Counts, error)
	RecentPautas(ctx context.Context, limit int) ([]domain.PautaResumo, error)
	ActiveSessions(ctx context.Context, at time.Time) ([]domain.SessaoAtiva, error)
	Ranking(ctx context.Context, limit int) ([]domain.RankingItem, error)
	SessionTurnout(ctx context.Context) ([]SessionVotes, error)
	CastVotes(ctx context.Context, start, end time.Time) ([]CastVote, error)
}

// CastVote is one ballot instant with its choice, for trend bucketing
type CastVote struct {
	At   time.Time
	Voto bool
}

// Counts carries the scalar totals for the summary
type Counts struct {
	Pautas         int64
	Sessoes        int64
	SessoesAbertas int64
	Votos          int64
	VotosSim       int64
}

// SessionVotes is the raw per session vote count used for turnout
type SessionVotes struct {
	SessaoID string
	PautaID  string
	Titulo   string
	Votos    int64
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) TallyForPauta(ctx context.Context, pautaID string) (int64, int64, error) {
	const sql = `
select
  count(1) filter (where v.voto),
  count(1) filter (where not v.voto)
from votos v
join sessoes s on s.id = v.sessao_id
where s.pauta_id = $1::uuid
`
	var sim, nao int64
	if err := r.q.QueryRow(ctx, sql, pautaID).Scan(&sim, &nao); err != nil {
		return 0, 0, perr.FromPostgres(err, "tally for pauta")
	}
	return sim, nao, nil
}

func (r *queries) Counts(ctx context.Context, at time.Time) (Counts, error) {
	const sql = `
select
  (select count(1) from pautas),
  (select count(1) from sessoes),
  (select count(1) from sessoes where closes_at > $1),
  (select count(1) from votos),
  (select count(1) from votos where voto)
`
	var c Counts
	err := r.q.QueryRow(ctx, sql, at).Scan(&c.Pautas, &c.Sessoes, &c.SessoesAbertas, &c.Votos, &c.VotosSim)
	if err != nil {
		return Counts{}, perr.FromPostgres(err, "dashboard counts")
	}
	return c, nil
}

func (r *queries) RecentPautas(ctx context.Context, limit int) ([]domain.PautaResumo, error) {
	const sql = `
select p.id::text, p.titulo, p.created_at, count(v.id) as total_votos
from pautas p
left join sessoes s on s.pauta_id = p.id
left join votos v on v.sessao_id = s.id
group by p.id, p.titulo, p.created_at
order by p.created_at desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "recent pautas")
	}
	defer rows.Close()
	var out []domain.PautaResumo
	for rows.Next() {
		var p domain.PautaResumo
		if err := rows.Scan(&p.ID, &p.Titulo, &p.CreatedAt, &p.TotalVotos); err != nil {
			return nil, perr.FromPostgres(err, "scan recent pauta")
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *queries) ActiveSessions(ctx context.Context, at time.Time) ([]domain.SessaoAtiva, error) {
	const sql = `
select s.id::text, s.pauta_id::text, p.titulo, s.closes_at
from sessoes s
join pautas p on p.id = s.pauta_id
where s.closes_at > $1
order by s.closes_at asc
`
	rows, err := r.q.Query(ctx, sql, at)
	if err != nil {
		return nil, perr.FromPostgres(err, "active sessions")
	}
	defer rows.Close()
	var out []domain.SessaoAtiva
	for rows.Next() {
		var s domain.SessaoAtiva
		if err := rows.Scan(&s.ID, &s.PautaID, &s.Titulo, &s.ClosesAt); err != nil {
			return nil, perr.FromPostgres(err, "scan active session")
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *queries) Ranking(ctx context.Context, limit int) ([]domain.RankingItem, error) {
	const sql = `
select p.id::text, p.titulo, count(v.id) as total_votos
from pautas p
left join sessoes s on s.pauta_id = p.id
left join votos v on v.sessao_id = s.id
group by p.id, p.titulo
order by total_votos desc, p.created_at desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "ranking")
	}
	defer rows.Close()
	var out []domain.RankingItem
	for rows.Next() {
		var it domain.RankingItem
		if err := rows.Scan(&it.PautaID, &it.Titulo, &it.TotalVotos); err != nil {
			return nil, perr.FromPostgres(err, "scan ranking item")
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *queries) SessionTurnout(ctx context.Context) ([]SessionVotes, error) {
	const sql = `
select s.id::text, s.pauta_id::text, p.titulo, count(v.id) as votos
from sessoes s
join pautas p on p.id = s.pauta_id
left join votos v on v.sessao_id = s.id
group by s.id, s.pauta_id, p.titulo
order by s.opened_at desc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "session turnout")
	}
	defer rows.Close()
	var out []SessionVotes
	for rows.Next() {
		var sv SessionVotes
		if err := rows.Scan(&sv.SessaoID, &sv.PautaID, &sv.Titulo, &sv.Votos); err != nil {
			return nil, perr.FromPostgres(err, "scan session turnout")
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

func (r *queries) CastVotes(ctx context.Context, start, end time.Time) ([]CastVote, error) {
	const sql = `
select cast_at, voto
from votos
where cast_at >= $1 and cast_at < $2
order by cast_at asc
`
	rows, err := r.q.Query(ctx, sql, start, end)
	if err != nil {
		return nil, perr.FromPostgres(err, "cast votes")
	}
	defer rows.Close()
	var out []CastVote
	for rows.Next() {
		var cv CastVote
		if err := rows.Scan(&cv.At, &cv.Voto); err != nil {
			return nil, perr.FromPostgres(err, "scan cast vote")
		}
		out = append(out, cv)
	}
	return out, rows.Err()
}
