// Package service contains vote ledger workflows
package service

import (
	"context"
	"time"

	"urna/internal/core/cpf"
	"urna/internal/modkit/repokit"
	perr "urna/internal/platform/errors"
	sessionsdomain "urna/internal/services/api/sessions/domain"
	"urna/internal/services/api/votes/domain"
	"urna/internal/services/api/votes/repo"

	"github.com/google/uuid"
)

// Service defines the votes service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the votes service
type Svc struct {
	Repo     repo.Repo
	Sessions sessionsdomain.ReaderPort

	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	now    func() time.Time
}

// New constructs a votes service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], sessions sessionsdomain.ReaderPort) *Svc {
	if db == nil {
		panic("votes.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("votes.Service requires a non nil Repo binder")
	}
	if sessions == nil {
		panic("votes.Service requires the sessions reader port")
	}
	return &Svc{Repo: binder.Bind(db), Sessions: sessions, binder: binder, db: db, now: time.Now}
}

// normalizeCPF validates the identity up front so nothing else runs on a bad one
func normalizeCPF(raw string) (string, error) {
	if !cpf.IsValid(raw) {
		return "", perr.InvalidArgf("CPF inválido")
	}
	norm, _ := cpf.Normalize(raw)
	return norm, nil
}

// Cast records a ballot on an open session
// order of checks: identity, session existence, session window, duplicate
func (s *Svc) Cast(ctx context.Context, in domain.CastVotoInput) (domain.Voto, error) {
	id, err := normalizeCPF(in.CPF)
	if err != nil {
		return domain.Voto{}, err
	}

	sess, err := s.Sessions.Get(ctx, in.SessaoID)
	if err != nil {
		return domain.Voto{}, err
	}

	castAt := s.now().UTC()
	if !sess.IsOpen(castAt) {
		return domain.Voto{}, perr.Conflictf("Sessão de votação encerrada")
	}

	v := domain.Voto{
		ID:       uuid.NewString(),
		SessaoID: sess.ID,
		CPF:      id,
		Voto:     *in.Voto,
		CastAt:   castAt,
	}

	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		dup, err := r.Exists(ctx, sess.ID, id)
		if err != nil {
			return err
		}
		if dup {
			return perr.Conflictf("Associado já votou na sessão")
		}
		// the unique index on (sessao_id, cpf) closes the race between the
		// check above and this insert
		return r.Insert(ctx, v)
	})
	if err != nil {
		return domain.Voto{}, err
	}
	return v, nil
}

// Get returns a vote by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Voto, error) {
	return s.Repo.Get(ctx, id)
}

// List returns votes, optionally scoped to one session
// an unknown session id is an error, not an empty list
func (s *Svc) List(ctx context.Context, sessaoID string) ([]domain.Voto, error) {
	if sessaoID == "" {
		return s.Repo.List(ctx)
	}
	if _, err := s.Sessions.Get(ctx, sessaoID); err != nil {
		return nil, err
	}
	return s.Repo.ListBySessao(ctx, sessaoID)
}

// Update rewrites a ballot against the session the update names
// the target session must still be open; cast_at is reset to now
func (s *Svc) Update(ctx context.Context, id string, in domain.UpdateVotoInput) (domain.Voto, error) {
	norm, err := normalizeCPF(in.CPF)
	if err != nil {
		return domain.Voto{}, err
	}

	sess, err := s.Sessions.Get(ctx, in.SessaoID)
	if err != nil {
		return domain.Voto{}, err
	}

	castAt := s.now().UTC()
	if !sess.IsOpen(castAt) {
		return domain.Voto{}, perr.Conflictf("Sessão de votação encerrada")
	}

	var out domain.Voto
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		cur, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		cur.SessaoID = sess.ID
		cur.CPF = norm
		cur.Voto = *in.Voto
		cur.CastAt = castAt
		if err := r.Update(ctx, cur); err != nil {
			return err
		}
		out = cur
		return nil
	})
	if err != nil {
		return domain.Voto{}, err
	}
	return out, nil
}

// Delete removes a ballot while its session is still open
func (s *Svc) Delete(ctx context.Context, id string) error {
	v, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	sess, err := s.Sessions.Get(ctx, v.SessaoID)
	if err != nil {
		return err
	}
	if !sess.IsOpen(s.now().UTC()) {
		return perr.Conflictf("Não é possível deletar após encerramento")
	}
	return s.Repo.Delete(ctx, id)
}

// FindByCPF returns the most recent vote cast under an identity
func (s *Svc) FindByCPF(ctx context.Context, raw string) (domain.Voto, error) {
	norm, err := normalizeCPF(raw)
	if err != nil {
		return domain.Voto{}, err
	}
	return s.Repo.LatestByCPF(ctx, norm)
}

// HasVoted reports whether an identity already voted on a session
func (s *Svc) HasVoted(ctx context.Context, raw, sessaoID string) (domain.JaVotouResult, error) {
	norm, err := normalizeCPF(raw)
	if err != nil {
		return domain.JaVotouResult{}, err
	}
	if _, err := s.Sessions.Get(ctx, sessaoID); err != nil {
		return domain.JaVotouResult{}, err
	}
	voted, err := s.Repo.Exists(ctx, sessaoID, norm)
	if err != nil {
		return domain.JaVotouResult{}, err
	}
	return domain.JaVotouResult{CPF: norm, SessaoID: sessaoID, JaVotou: voted}, nil
}

// ValidateCPF runs the checksum without touching storage
func (s *Svc) ValidateCPF(_ context.Context, in domain.ValidarCPFInput) domain.ValidarCPFResult {
	if norm, ok := cpf.Normalize(in.CPF); ok && cpf.IsValid(in.CPF) {
		return domain.ValidarCPFResult{CPF: norm, Valido: true}
	}
	return domain.ValidarCPFResult{CPF: in.CPF, Valido: false}
}
