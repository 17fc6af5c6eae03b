package domain

// swagger:model domain.Address
type Address struct {
	CEP          CEP    `json:"cep" validate:"required,cep"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state" validate:"omitempty,len=2,alpha"`
	IBGE         string `json:"ibge,omitempty" validate:"omitempty,numeric"`
	DDD          string `json:"ddd,omitempty" validate:"omitempty,numeric"`
}
