package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Open(ctx context.Context, in OpenSessaoInput) (Sessao, error)
	Get(ctx context.Context, id string) (Sessao, error)
	List(ctx context.Context) ([]Sessao, error)
	Update(ctx context.Context, id string, in UpdateSessaoInput) (Sessao, error)
	Delete(ctx context.Context, id string) error
}

// ReaderPort is the narrow read surface other modules depend on
type ReaderPort interface {
	Get(ctx context.Context, id string) (Sessao, error)
}
