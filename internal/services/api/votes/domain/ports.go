package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Cast(ctx context.Context, in CastVotoInput) (Voto, error)
	Get(ctx context.Context, id string) (Voto, error)
	List(ctx context.Context, sessaoID string) ([]Voto, error)
	Update(ctx context.Context, id string, in UpdateVotoInput) (Voto, error)
	Delete(ctx context.Context, id string) error

	FindByCPF(ctx context.Context, cpf string) (Voto, error)
	HasVoted(ctx context.Context, cpf, sessaoID string) (JaVotouResult, error)
	ValidateCPF(ctx context.Context, in ValidarCPFInput) ValidarCPFResult
}
