// Package repo provides postgres access for agendas
package repo

import (
	"context"
	"errors"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	"urna/internal/services/api/agendas/domain"

	"github.com/jackc/pgx/v5"
)

// Repo is the minimal persistence surface for agendas
type Repo interface {
	Insert(ctx context.Context, p domain.Pauta) error
	Get(ctx context.Context, id string) (domain.Pauta, error)
	List(ctx context.Context) ([]domain.Pauta, error)
	Update(ctx context.Context, p domain.Pauta) error
	Delete(ctx context.Context, id string) error
	CountSessions(ctx context.Context, pautaID string) (int64, error)
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

func (r *queries) Insert(ctx context.Context, p domain.Pauta) error {
	const sql = `
insert into pautas (id, titulo, descricao, created_at)
values ($1::uuid, $2, $3, $4)
`
	_, err := r.q.Exec(ctx, sql, p.ID, p.Titulo, p.Descricao, p.CreatedAt)
	return perr.FromPostgres(err, "insert pauta")
}

func (r *queries) Get(ctx context.Context, id string) (domain.Pauta, error) {
	const sql = `
select id::text, titulo, descricao, created_at
from pautas
where id = $1::uuid
`
	var p domain.Pauta
	err := r.q.QueryRow(ctx, sql, id).Scan(&p.ID, &p.Titulo, &p.Descricao, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Pauta{}, perr.NotFoundf("Pauta não encontrada: %s", id)
	}
	if err != nil {
		return domain.Pauta{}, perr.FromPostgres(err, "get pauta")
	}
	return p, nil
}

func (r *queries) List(ctx context.Context) ([]domain.Pauta, error) {
	const sql = `
select id::text, titulo, descricao, created_at
from pautas
order by created_at desc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list pautas")
	}
	defer rows.Close()
	var out []domain.Pauta
	for rows.Next() {
		var p domain.Pauta
		if err := rows.Scan(&p.ID, &p.Titulo, &p.Descricao, &p.CreatedAt); err != nil {
			return nil, perr.FromPostgres(err, "scan pauta")
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *queries) Update(ctx context.Context, p domain.Pauta) error {
	const sql = `
update pautas
set titulo = $2, descricao = $3
where id = $1::uuid
`
	tag, err := r.q.Exec(ctx, sql, p.ID, p.Titulo, p.Descricao)
	if err != nil {
		return perr.FromPostgres(err, "update pauta")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("Pauta não encontrada: %s", p.ID)
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	const sql = `delete from pautas where id = $1::uuid`
	tag, err := r.q.Exec(ctx, sql, id)
	if err != nil {
		return perr.FromPostgres(err, "delete pauta")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("Pauta não encontrada: %s", id)
	}
	return nil
}

func (r *queries) CountSessions(ctx context.Context, pautaID string) (int64, error) {
	const sql = `select count(1) from sessoes where pauta_id = $1::uuid`
	var n int64
	if err := r.q.QueryRow(ctx, sql, pautaID).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "count sessoes for pauta")
	}
	return n, nil
}
