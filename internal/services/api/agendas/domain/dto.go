package domain

// CreatePautaInput is the payload for creating an agenda
type CreatePautaInput struct {
	Titulo    string `json:"titulo" validate:"required,notblank,max=200" example:"Reforma do estatuto"`
	Descricao string `json:"descricao" validate:"required,notblank" example:"Votação da proposta de reforma"`
}

// UpdatePautaInput is the payload for updating an agenda
type UpdatePautaInput struct {
	Titulo    string `json:"titulo" validate:"required,notblank,max=200" example:"Reforma do estatuto v2"`
	Descricao string `json:"descricao" validate:"required,notblank" example:"Texto revisado da proposta"`
}
