// Package domain holds DTOs for dashboard http and service contracts
package domain

import "time"

// ResultadoPauta is the yes/no tally for one agenda across all its sessions
type ResultadoPauta struct {
	PautaID string `json:"pauta_id" example:"0d7f7c3a-8a50-4d7b-9c6b-2f3a4b5c6d7e"`
	Titulo  string `json:"titulo" example:"Reforma do estatuto"`
	Sim     int64  `json:"sim" example:"42"`
	Nao     int64  `json:"nao" example:"17"`
	Total   int64  `json:"total" example:"59"`
}

// PautaResumo is an agenda with its accumulated vote count
type PautaResumo struct {
	ID         string    `json:"id"`
	Titulo     string    `json:"titulo"`
	CreatedAt  time.Time `json:"created_at"`
	TotalVotos int64     `json:"total_votos" example:"12"`
}

// SessaoAtiva is an open session with human readable remaining time
type SessaoAtiva struct {
	ID            string    `json:"id"`
	PautaID       string    `json:"pauta_id"`
	Titulo        string    `json:"titulo"`
	ClosesAt      time.Time `json:"closes_at"`
	TempoRestante string    `json:"tempo_restante" example:"4 minutos"`
}

// Resumo is the aggregate snapshot for the landing dashboard
type Resumo struct {
	TotalPautas       int64         `json:"total_pautas" example:"10"`
	TotalSessoes      int64         `json:"total_sessoes" example:"14"`
	SessoesAbertas    int64         `json:"sessoes_abertas" example:"2"`
	SessoesEncerradas int64         `json:"sessoes_encerradas" example:"12"`
	TotalVotos        int64         `json:"total_votos" example:"320"`
	PercentualSim     float64       `json:"percentual_sim" example:"62.5"`
	PercentualNao     float64       `json:"percentual_nao" example:"37.5"`
	PautasRecentes    []PautaResumo `json:"pautas_recentes"`
	SessoesAtivas     []SessaoAtiva `json:"sessoes_ativas"`
}

// RankingItem is one row of the agendas-by-votes ranking
type RankingItem struct {
	PautaID    string `json:"pauta_id"`
	Titulo     string `json:"titulo"`
	TotalVotos int64  `json:"total_votos" example:"59"`
}

// Participacao is turnout for one session against the eligible population
type Participacao struct {
	SessaoID   string  `json:"sessao_id"`
	PautaID    string  `json:"pauta_id"`
	Titulo     string  `json:"titulo"`
	TotalVotos int64   `json:"total_votos" example:"40"`
	Percentual float64 `json:"percentual" example:"40"`
}

// Granularity values accepted by the trend endpoint
const (
	GranularidadeDia    = "DIA"
	GranularidadeSemana = "SEMANA"
	GranularidadeMes    = "MES"
)

// TendenciaBucket is one time bucket of vote volume, split by choice
type TendenciaBucket struct {
	Periodo string `json:"periodo" example:"2025-08-01"`
	Sim     int64  `json:"sim" example:"15"`
	Nao     int64  `json:"nao" example:"10"`
}
