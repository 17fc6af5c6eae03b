package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
	"github.com/sm8ta/cep_cache_microservice/internal/core/ports"
)

type CepHandler struct {
	resolver ports.AddressResolver
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
}

// AddressDTO keeps the ViaCEP field names clients already know.
type AddressDTO struct {
	CEP          string `json:"cep" example:"01001-000"`
	Street       string `json:"logradouro" example:"Praça da Sé"`
	Complement   string `json:"complemento,omitempty" example:"lado ímpar"`
	Neighborhood string `json:"bairro" example:"Sé"`
	City         string `json:"localidade" example:"São Paulo"`
	State        string `json:"uf" example:"SP"`
	IBGE         string `json:"ibge,omitempty" example:"3550308"`
	DDD          string `json:"ddd,omitempty" example:"11"`
}

func toAddressDTO(address *domain.Address) AddressDTO {
	return AddressDTO{
		CEP:          address.CEP.String(),
		Street:       address.Street,
		Complement:   address.Complement,
		Neighborhood: address.Neighborhood,
		City:         address.City,
		State:        address.State,
		IBGE:         address.IBGE,
		DDD:          address.DDD,
	}
}

func NewCepHandler(
	resolver ports.AddressResolver,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CepHandler {
	return &CepHandler{
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
	}
}

// @Summary Resolve CEP
// @Description Returns the address for a CEP, from the cache or from ViaCEP
// @Tags cep
// @Security BearerAuth
// @Produce json
// @Param cep path string true "CEP, with or without hyphen" example:"01001-000"
// @Success 200 {object} addressResponse "CEP found"
// @Failure 400 {object} errorResponse "Invalid CEP"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "CEP not found"
// @Failure 502 {object} errorResponse "ViaCEP unavailable"
// @Failure 503 {object} errorResponse "Store unavailable"
// @Router /cep/{cep} [get]
// @Router /cep/{cep} [post]
func (h *CepHandler) GetCep(c *gin.Context) {
	h.resolve(c, c.Param("cep"))
}

// @Summary Resolve CEP by query
// @Description Same as /cep/{cep}, with the code in the query string
// @Tags cep
// @Security BearerAuth
// @Produce json
// @Param cep query string true "CEP, with or without hyphen" example:"01001000"
// @Success 200 {object} addressResponse "CEP found"
// @Failure 400 {object} errorResponse "Invalid CEP"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "CEP not found"
// @Failure 502 {object} errorResponse "ViaCEP unavailable"
// @Failure 503 {object} errorResponse "Store unavailable"
// @Router /cep [get]
func (h *CepHandler) GetCepByQuery(c *gin.Context) {
	h.resolve(c, c.Query("cep"))
}

func (h *CepHandler) resolve(c *gin.Context, raw string) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if strings.TrimSpace(raw) == "" {
		newErrorResponse(c, http.StatusBadRequest, "CEP is required.")
		return
	}

	fields := map[string]interface{}{"cep": raw}
	if payload, ok := getAuthPayload(c, authorizationPayloadKey); ok {
		fields["subject"] = payload.Subject
	}
	h.logger.Info("Processing CEP request", fields)

	address, found, err := h.resolver.Resolve(c.Request.Context(), raw)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, domain.ErrStoreUnavailable):
		newErrorResponse(c, http.StatusServiceUnavailable, "Address store unavailable")
		return
	case errors.Is(err, domain.ErrSourceUnavailable):
		newErrorResponse(c, http.StatusBadGateway, "CEP lookup service unavailable")
		return
	case err != nil:
		h.logger.Error("Unexpected resolver error", map[string]interface{}{
			"cep":   raw,
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Lookup failed")
		return
	}

	if !found {
		newErrorResponse(c, http.StatusNotFound, fmt.Sprintf("CEP %s not found.", strings.TrimSpace(raw)))
		return
	}

	newAddressResponse(c, address)
}
