package handler

import (
	"net/http"

	"territory-api/internal/geo"

	"github.com/gin-gonic/gin"
)

// PlusCodeHandler handles plus code validation requests
type PlusCodeHandler struct{}

// NewPlusCodeHandler creates a new plus code handler
func NewPlusCodeHandler() *PlusCodeHandler {
	return &PlusCodeHandler{}
}

// Validate handles GET /pluscode/validate requests. An empty code is a
// present-but-invalid code, not a missing parameter.
func (h *PlusCodeHandler) Validate(c *gin.Context) {
	code, ok := c.GetQuery("code")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'code'"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":  code,
		"valid": geo.IsValidPlusCode(code),
	})
}
