package module

import (
	"context"

	"urna/internal/services/api/dashboard/domain"
	dashsvc "urna/internal/services/api/dashboard/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptDashboardPort struct{ svc dashsvc.Service }

// Resultado tallies yes/no for an agenda across all of its sessions
func (a adaptDashboardPort) Resultado(ctx context.Context, pautaID string) (domain.ResultadoPauta, error) {
	return a.svc.Resultado(ctx, pautaID)
}
