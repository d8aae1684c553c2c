package module

import (
	"context"

	"urna/internal/services/api/agendas/domain"
	agendassvc "urna/internal/services/api/agendas/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAgendaPort struct{ svc agendassvc.Service }

// Get returns an agenda by id for cross module reads
func (a adaptAgendaPort) Get(ctx context.Context, id string) (domain.Pauta, error) {
	return a.svc.Get(ctx, id)
}
