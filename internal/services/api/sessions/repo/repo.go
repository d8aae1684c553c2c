// Package repo provides postgres access for voting sessions
package repo

import (
	"context"
	"errors"
	"time"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	"urna/internal/services/api/sessions/domain"

	"github.com/jackc/pgx/v5"
)

// Repo is the minimal persistence surface for sessions
type Repo interface {
	Insert(ctx context.Context, s domain.Sessao) error
	Get(ctx context.Context, id string) (domain.Sessao, error)
	List(ctx context.Context) ([]domain.Sessao, error)
	Update(ctx context.Context, s domain.Sessao) error
	Delete(ctx context.Context, id string) error
	HasOpen(ctx context.Context, pautaID string, at time.Time) (bool, error)
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

func (r *queries) Insert(ctx context.Context, s domain.Sessao) error {
	const sql = `
insert into sessoes (id, pauta_id, opened_at, closes_at)
values ($1::uuid, $2::uuid, $3, $4)
`
	_, err := r.q.Exec(ctx, sql, s.ID, s.PautaID, s.OpenedAt, s.ClosesAt)
	return perr.FromPostgres(err, "insert sessao")
}

func (r *queries) Get(ctx context.Context, id string) (domain.Sessao, error) {
	const sql = `
select id::text, pauta_id::text, opened_at, closes_at
from sessoes
where id = $1::uuid
`
	var s domain.Sessao
	err := r.q.QueryRow(ctx, sql, id).Scan(&s.ID, &s.PautaID, &s.OpenedAt, &s.ClosesAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Sessao{}, perr.NotFoundf("Sessão não encontrada: %s", id)
	}
	if err != nil {
		return domain.Sessao{}, perr.FromPostgres(err, "get sessao")
	}
	return s, nil
}

func (r *queries) List(ctx context.Context) ([]domain.Sessao, error) {
	const sql = `
select id::text, pauta_id::text, opened_at, closes_at
from sessoes
order by opened_at desc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list sessoes")
	}
	defer rows.Close()
	var out []domain.Sessao
	for rows.Next() {
		var s domain.Sessao
		if err := rows.Scan(&s.ID, &s.PautaID, &s.OpenedAt, &s.ClosesAt); err != nil {
			return nil, perr.FromPostgres(err, "scan sessao")
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *queries) Update(ctx context.Context, s domain.Sessao) error {
	const sql = `
update sessoes
set pauta_id = $2::uuid, closes_at = $3
where id = $1::uuid
`
	tag, err := r.q.Exec(ctx, sql, s.ID, s.PautaID, s.ClosesAt)
	if err != nil {
		return perr.FromPostgres(err, "update sessao")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("Sessão não encontrada: %s", s.ID)
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	const sql = `delete from sessoes where id = $1::uuid`
	tag, err := r.q.Exec(ctx, sql, id)
	if err != nil {
		return perr.FromPostgres(err, "delete sessao")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("Sessão não encontrada: %s", id)
	}
	return nil
}

func (r *queries) HasOpen(ctx context.Context, pautaID string, at time.Time) (bool, error) {
	const sql = `
select exists (
  select 1 from sessoes
  where pauta_id = $1::uuid and closes_at > $2
)
`
	var open bool
	if err := r.q.QueryRow(ctx, sql, pautaID, at).Scan(&open); err != nil {
		return false, perr.FromPostgres(err, "check open sessao")
	}
	return open, nil
}
