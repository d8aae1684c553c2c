package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Resultado(ctx context.Context, pautaID string) (ResultadoPauta, error)
	Resumo(ctx context.Context) (Resumo, error)
	Ranking(ctx context.Context, limite int) ([]RankingItem, error)
	Participacao(ctx context.Context) ([]Participacao, error)
	BaixaParticipacao(ctx context.Context) ([]Participacao, error)
	Tendencia(ctx context.Context, inicio, fim, granularidade string) ([]TendenciaBucket, error)
}
