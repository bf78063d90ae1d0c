package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/confeitaria/internal/apperr"
)

// MessageResponse is the success body of write endpoints.
// swagger:model
type MessageResponse struct {
	// example: Encomenda criada com sucesso!
	Message string `json:"message"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Encomenda não encontrada!
	Error string `json:"error"`
}

func WriteMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageResponse{Message: msg})
}

// WriteError is the single translation from a store error to an HTTP response.
func WriteError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(apperr.HTTPStatus(err), HTTPError{Error: err.Error()})
}
