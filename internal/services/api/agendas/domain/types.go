// Package domain holds agenda entities and contracts
package domain

import "time"

// Pauta is a voting agenda item
type Pauta struct {
	ID        string    `json:"id" example:"0d7f7c3a-8a50-4d7b-9c6b-2f3a4b5c6d7e"`
	Titulo    string    `json:"titulo" example:"Reforma do estatuto"`
	Descricao string    `json:"descricao" example:"Votação da proposta de reforma do estatuto social"`
	CreatedAt time.Time `json:"created_at"`
}
