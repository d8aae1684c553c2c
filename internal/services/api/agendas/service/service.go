// Package service contains agenda workflows
package service

import (
	"context"
	"time"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	"urna/internal/services/api/agendas/domain"
	"urna/internal/services/api/agendas/repo"

	"github.com/google/uuid"
)

// Service defines the agendas service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the agendas service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	now    func() time.Time
}

// New constructs an agendas service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("agendas.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("agendas.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
}

// Create registers a new agenda
func (s *Svc) Create(ctx context.Context, in domain.CreatePautaInput) (domain.Pauta, error) {
	p := domain.Pauta{
		ID:        uuid.NewString(),
		Titulo:    in.Titulo,
		Descricao: in.Descricao,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.Insert(ctx, p); err != nil {
		return domain.Pauta{}, err
	}
	return p, nil
}

// Get returns an agenda by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Pauta, error) {
	return s.Repo.Get(ctx, id)
}

// List returns all agendas, newest first
func (s *Svc) List(ctx context.Context) ([]domain.Pauta, error) {
	return s.Repo.List(ctx)
}

// Update replaces title and description of an existing agenda
func (s *Svc) Update(ctx context.Context, id string, in domain.UpdatePautaInput) (domain.Pauta, error) {
	var out domain.Pauta
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		cur.Titulo = in.Titulo
		cur.Descricao = in.Descricao
		if err := r.Update(ctx, cur); err != nil {
			return err
		}
		out = cur
		return nil
	})
	if err != nil {
		return domain.Pauta{}, err
	}
	return out, nil
}

// Delete removes an agenda that has no voting sessions
// agendas referenced by sessions are kept and the call answers conflict
func (s *Svc) Delete(ctx context.Context, id string) error {
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		n, err := r.CountSessions(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return perr.Conflictf("Não é possível deletar pauta com sessões de votação")
		}
		return r.Delete(ctx, id)
	})
}
