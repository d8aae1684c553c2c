package module

import (
	"context"

	"urna/internal/services/api/votes/domain"
	votessvc "urna/internal/services/api/votes/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptVotoPort struct{ svc votessvc.Service }

// HasVoted reports whether an identity already voted on a session
func (a adaptVotoPort) HasVoted(ctx context.Context, cpf, sessaoID string) (domain.JaVotouResult, error) {
	return a.svc.HasVoted(ctx, cpf, sessaoID)
}
