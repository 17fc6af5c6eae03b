package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/cep_cache_microservice/internal/core/domain"
)

type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"CEP 99999-999 not found."`
}

type successResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"OK"`
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
}

// addressResponse is the 200 body of every /cep route.
type addressResponse struct {
	Success bool       `json:"success" example:"true"`
	Message string     `json:"message" example:"CEP found"`
	Data    AddressDTO `json:"data"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Success: false,
		Message: message,
	})
}

func newSuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, successResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func newAddressResponse(c *gin.Context, address *domain.Address) {
	c.JSON(http.StatusOK, addressResponse{
		Success: true,
		Message: "CEP found",
		Data:    toAddressDTO(address),
	})
}
