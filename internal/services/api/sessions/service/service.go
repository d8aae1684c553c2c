// Package service contains voting session workflows
package service

import (
	"context"
	"time"

	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	agendasdomain "urna/internal/services/api/agendas/domain"
	"urna/internal/services/api/sessions/domain"
	"urna/internal/services/api/sessions/repo"

	"github.com/google/uuid"
)

// DefaultDuration is applied when a session is opened without a usable duration
const DefaultDuration = time.Minute

// Service defines the sessions service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the sessions service
type Svc struct {
	Repo    repo.Repo
	Agendas agendasdomain.ReaderPort

	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	now    func() time.Time
}

// New constructs a sessions service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], agendas agendasdomain.ReaderPort) *Svc {
	if db == nil {
		panic("sessions.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("sessions.Service requires a non nil Repo binder")
	}
	if agendas == nil {
		panic("sessions.Service requires the agendas reader port")
	}
	return &Svc{Repo: binder.Bind(db), Agendas: agendas, binder: binder, db: db, now: time.Now}
}

// duration normalizes the requested minutes, falling back to the default
func duration(minutes int) time.Duration {
	if minutes <= 0 {
		return DefaultDuration
	}
	return time.Duration(minutes) * time.Minute
}

// Open starts a voting session for an agenda
// at most one session per agenda may be open at a time
func (s *Svc) Open(ctx context.Context, in domain.OpenSessaoInput) (domain.Sessao, error) {
	if _, err := s.Agendas.Get(ctx, in.PautaID); err != nil {
		return domain.Sessao{}, err
	}

	openedAt := s.now().UTC()
	sess := domain.Sessao{
		ID:       uuid.NewString(),
		PautaID:  in.PautaID,
		OpenedAt: openedAt,
		ClosesAt: openedAt.Add(duration(in.DuracaoMinutos)),
	}

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		open, err := r.HasOpen(ctx, in.PautaID, openedAt)
		if err != nil {
			return err
		}
		if open {
			return perr.Conflictf("Já existe uma sessão aberta para a pauta: %s", in.PautaID)
		}
		return r.Insert(ctx, sess)
	})
	if err != nil {
		return domain.Sessao{}, err
	}
	return sess, nil
}

// Get returns a session by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Sessao, error) {
	return s.Repo.Get(ctx, id)
}

// List returns all sessions, most recently opened first
func (s *Svc) List(ctx context.Context) ([]domain.Sessao, error) {
	return s.Repo.List(ctx)
}

// Update re-targets a session and recomputes its closing instant from now
// the opening instant never moves
func (s *Svc) Update(ctx context.Context, id string, in domain.UpdateSessaoInput) (domain.Sessao, error) {
	if _, err := s.Agendas.Get(ctx, in.PautaID); err != nil {
		return domain.Sessao{}, err
	}

	var out domain.Sessao
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		cur.PautaID = in.PautaID
		cur.ClosesAt = s.now().UTC().Add(duration(in.DuracaoMinutos))
		if err := r.Update(ctx, cur); err != nil {
			return err
		}
		out = cur
		return nil
	})
	if err != nil {
		return domain.Sessao{}, err
	}
	return out, nil
}

// Delete removes a session
func (s *Svc) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
