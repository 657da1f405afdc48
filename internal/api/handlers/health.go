package handlers

import (
	"net/http"

	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/health"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// availableModels mirrors what the OpenRouter account has enabled. The
// /test probe reports them without calling out to verify.
var availableModels = []string{
	"anthropic/claude-3.5-sonnet",
	"openai/gpt-4-turbo",
	"google/gemini-pro",
	"meta-llama/llama-3.1-70b-instruct",
}

// HealthHandler serves the static status probe and the dependency check.
type HealthHandler struct {
	checker *health.Checker
	logger  *logrus.Logger
}

func NewHealthHandler(checker *health.Checker, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger,
	}
}

// HandleTest reports static service metadata. It makes no upstream calls,
// so it stays usable when either dependency is down.
func (h *HealthHandler) HandleTest(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{
		Status:          "Server is running!",
		Message:         "Bio Re:code API v1.0",
		AIProvider:      "OpenRouter",
		AvailableModels: availableModels,
	})
}

// HandleHealth probes both upstream dependencies and reports aggregate
// health, 503 when anything is unreachable.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	overall := h.checker.CheckAll(c.Request.Context())

	status := http.StatusOK
	if overall.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, overall)
}
