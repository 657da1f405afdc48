package utils

import (
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/models"
	"github.com/gin-gonic/gin"
)

// ErrorJSON writes the flat error payload every endpoint shares. The
// message text is part of each endpoint's contract, so callers pass it
// verbatim.
func ErrorJSON(c *gin.Context, code int, message string) {
	c.JSON(code, models.ErrorResponse{Error: message})
}
