// Package domain holds voting session entities and contracts
package domain

import "time"

// Sessao is a time bounded voting window for one agenda
type Sessao struct {
	ID       string    `json:"id" example:"7b3e9c2d-5f41-4a8b-8d6c-1e2f3a4b5c6d"`
	PautaID  string    `json:"pauta_id" example:"0d7f7c3a-8a50-4d7b-9c6b-2f3a4b5c6d7e"`
	OpenedAt time.Time `json:"opened_at"`
	ClosesAt time.Time `json:"closes_at"`
}

// IsOpen reports whether the session accepts votes at instant at
// the closing instant itself is closed
func (s Sessao) IsOpen(at time.Time) bool { return at.Before(s.ClosesAt) }
