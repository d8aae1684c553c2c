// Package repo provides postgres access for the vote ledger
package repo

import (
	"context"
	"errors"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	"urna/internal/services/api/votes/domain"

	"github.com/jackc/pgx/v5"
)

// Repo is the minimal persistence surface for votes
type Repo interface {
	Insert(ctx context.Context, v domain.Voto) error
	Get(ctx context.Context, id string) (domain.Voto, error)
	List(ctx context.Context) ([]domain.Voto, error)
	ListBySessao(ctx context.Context, sessaoID string) ([]domain.Voto, error)
	Update(ctx context.Context, v domain.Voto) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, sessaoID, cpf string) (bool, error)
	LatestByCPF(ctx context.Context, cpf string) (domain.Voto, error)
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

const votoCols = `id::text, sessao_id::text, cpf, voto, cast_at`

func (r *queries) Insert(ctx context.Context, v domain.Voto) error {
	const sql = `
insert into votos (id, sessao_id, cpf, voto, cast_at)
values ($1::uuid, $2::uuid, $3, $4, $5)
`
	_, err := r.q.Exec(ctx, sql, v.ID, v.SessaoID, v.CPF, v.Voto, v.CastAt)
	if perr.IsDuplicateKey(err) {
		return perr.Wrap(err, perr.ErrorCodeConflict, "Associado já votou na sessão")
	}
	return perr.FromPostgres(err, "insert voto")
}

func (r *queries) Get(ctx context.Context, id string) (domain.Voto, error) {
	const sql = `select ` + votoCols + ` from votos where id = $1::uuid`
	var v domain.Voto
	err := r.q.QueryRow(ctx, sql, id).Scan(&v.ID, &v.SessaoID, &v.CPF, &v.Voto, &v.CastAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Voto{}, perr.NotFoundf("Voto não encontrado: %s", id)
	}
	if err != nil {
		return domain.Voto{}, perr.FromPostgres(err, "get voto")
	}
	return v, nil
}

func (r *queries) List(ctx context.Context) ([]domain.Voto, error) {
	const sql = `select ` + votoCols + ` from votos order by cast_at desc`
	return r.collect(ctx, sql)
}

func (r *queries) ListBySessao(ctx context.Context, sessaoID string) ([]domain.Voto, error) {
	const sql = `select ` + votoCols + ` from votos where sessao_id = $1::uuid order by cast_at desc`
	return r.collect(ctx, sql, sessaoID)
}

func (r *queries) collect(ctx context.Context, sql string, args ...any) ([]domain.Voto, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "list votos")
	}
	defer rows.Close()
	var out []domain.Voto
	for rows.Next() {
		var v domain.Voto
		if err := rows.Scan(&v.ID, &v.SessaoID, &v.CPF, &v.Voto, &v.CastAt); err != nil {
			return nil, perr.FromPostgres(err, "scan voto")
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *queries) Update(ctx context.Context, v domain.Voto) error {
	const sql = `
update votos
set sessao_id = $2::uuid, cpf = $3, voto = $4, cast_at = $5
where id = $1::uuid
`
	tag, err := r.q.Exec(ctx, sql, v.ID, v.SessaoID, v.CPF, v.Voto, v.CastAt)
	if perr.IsDuplicateKey(err) {
		return perr.Wrap(err, perr.ErrorCodeConflict, "Associado já votou na sessão")
	}
	if err != nil {
		return perr.FromPostgres(err, "update voto")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("Voto não encontrado: %s", v.ID)
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	const sql = `delete from votos where id = $1::uuid`
	tag, err := r.q.Exec(ctx, sql, id)
	if err != nil {
		return perr.FromPostgres(err, "delete voto")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("Voto não encontrado: %s", id)
	}
	return nil
}

func (r *queries) Exists(ctx context.Context, sessaoID, cpf string) (bool, error) {
	const sql = `
select exists (
  select 1 from votos where sessao_id = $1::uuid and cpf = $2
)
`
	var found bool
	if err := r.q.QueryRow(ctx, sql, sessaoID, cpf).Scan(&found); err != nil {
		return false, perr.FromPostgres(err, "check voto exists")
	}
	return found, nil
}

func (r *queries) LatestByCPF(ctx context.Context, cpf string) (domain.Voto, error) {
	const sql = `
select ` + votoCols + `
from votos
where cpf = $1
order by cast_at desc
limit 1
`
	var v domain.Voto
	err := r.q.QueryRow(ctx, sql, cpf).Scan(&v.ID, &v.SessaoID, &v.CPF, &v.Voto, &v.CastAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Voto{}, perr.NotFoundf("Voto não encontrado para o CPF: %s", cpf)
	}
	if err != nil {
		return domain.Voto{}, perr.FromPostgres(err, "find voto by cpf")
	}
	return v, nil
}
