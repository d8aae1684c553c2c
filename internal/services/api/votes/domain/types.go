// Package domain holds vote entities and contracts
package domain

import "time"

// Voto is a single yes/no ballot cast by an associate on a session
type Voto struct {
	ID       string    `json:"id" example:"9f8e7d6c-5b4a-4f3e-8d2c-1b0a9f8e7d6c"`
	SessaoID string    `json:"sessao_id" example:"7b3e9c2d-5f41-4a8b-8d6c-1e2f3a4b5c6d"`
	CPF      string    `json:"cpf" example:"11144477735"`
	Voto     bool      `json:"voto" example:"true"`
	CastAt   time.Time `json:"cast_at"`
}
