package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Create(ctx context.Context, in CreatePautaInput) (Pauta, error)
	Get(ctx context.Context, id string) (Pauta, error)
	List(ctx context.Context) ([]Pauta, error)
	Update(ctx context.Context, id string, in UpdatePautaInput) (Pauta, error)
	Delete(ctx context.Context, id string) error
}

// ReaderPort is the narrow read surface other modules depend on
type ReaderPort interface {
	Get(ctx context.Context, id string) (Pauta, error)
}
