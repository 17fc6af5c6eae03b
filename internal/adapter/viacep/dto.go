package viacep

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
)

type cepResponse struct {
	CEP         string   `json:"cep"`
	Logradouro  string   `json:"logradouro"`
	Complemento string   `json:"complemento"`
	Bairro      string   `json:"bairro"`
	Localidade  string   `json:"localidade"`
	UF          string   `json:"uf"`
	IBGE        string   `json:"ibge"`
	DDD         string   `json:"ddd"`
	Erro        flexBool `json:"erro"`
}

func (r cepResponse) toDomain() (*domain.Address, error) {
	cep, err := domain.ParseCEP(r.CEP)
	if err != nil {
		return nil, fmt.Errorf("response carries no usable cep: %s", err.Error())
	}
	return &domain.Address{
		CEP:          cep,
		Street:       r.Logradouro,
		Complement:   r.Complemento,
		Neighborhood: r.Bairro,
		City:         r.Localidade,
		State:        r.UF,
		IBGE:         r.IBGE,
		DDD:          r.DDD,
	}, nil
}

// flexBool accepts both true and "true"; ViaCEP has sent either for unknown CEPs.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*b = false
		return nil
	}
	v, err := strconv.ParseBool(string(data))
	if err != nil {
		return fmt.Errorf("erro: %w", err)
	}
	*b = flexBool(v)
	return nil
}
