package domain

// OpenSessaoInput is the payload for opening a session
// a missing or non positive duration falls back to one minute
type OpenSessaoInput struct {
	PautaID        string `json:"pauta_id" validate:"required,uuid" example:"0d7f7c3a-8a50-4d7b-9c6b-2f3a4b5c6d7e"`
	DuracaoMinutos int    `json:"duracao_minutos,omitempty" example:"5"`
}

// UpdateSessaoInput is the payload for updating a session
// the opening instant is preserved, only the closing instant moves
type UpdateSessaoInput struct {
	PautaID        string `json:"pauta_id" validate:"required,uuid" example:"0d7f7c3a-8a50-4d7b-9c6b-2f3a4b5c6d7e"`
	DuracaoMinutos int    `json:"duracao_minutos,omitempty" example:"5"`
}
