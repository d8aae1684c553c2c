package module

import (
	"context"

	"urna/internal/services/api/sessions/domain"
	sessionssvc "urna/internal/services/api/sessions/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptSessaoPort struct{ svc sessionssvc.Service }

// Get returns a session by id for cross module reads
func (a adaptSessaoPort) Get(ctx context.Context, id string) (domain.Sessao, error) {
	return a.svc.Get(ctx, id)
}
