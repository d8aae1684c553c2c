package domain

// CastVotoInput is the payload for casting a vote
// Voto is a pointer so that an explicit "no" survives required validation
type CastVotoInput struct {
	SessaoID string `json:"sessao_id" validate:"required,uuid" example:"7b3e9c2d-5f41-4a8b-8d6c-1e2f3a4b5c6d"`
	CPF      string `json:"cpf" validate:"required" example:"111.444.777-35"`
	Voto     *bool  `json:"voto" validate:"required" example:"true"`
}

// UpdateVotoInput is the payload for changing a vote
type UpdateVotoInput struct {
	SessaoID string `json:"sessao_id" validate:"required,uuid" example:"7b3e9c2d-5f41-4a8b-8d6c-1e2f3a4b5c6d"`
	CPF      string `json:"cpf" validate:"required" example:"111.444.777-35"`
	Voto     *bool  `json:"voto" validate:"required" example:"false"`
}

// ValidarCPFInput is the payload for the standalone checksum endpoint
type ValidarCPFInput struct {
	CPF string `json:"cpf" validate:"required" example:"111.444.777-35"`
}

// ValidarCPFResult reports the checksum outcome
type ValidarCPFResult struct {
	CPF    string `json:"cpf" example:"11144477735"`
	Valido bool   `json:"valido" example:"true"`
}

// JaVotouResult reports whether an associate already voted on a session
type JaVotouResult struct {
	CPF      string `json:"cpf" example:"11144477735"`
	SessaoID string `json:"sessao_id" example:"7b3e9c2d-5f41-4a8b-8d6c-1e2f3a4b5c6d"`
	JaVotou  bool   `json:"ja_votou" example:"true"`
}
