package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Checker probes the two upstream dependencies the lookup pipeline needs:
// the NCBI E-utilities and the OpenRouter API.
type Checker struct {
	geneDBURL   string
	providerURL string
	apiKey      string
	httpClient  *http.Client
	logger      *logrus.Logger
}

func NewChecker(geneDBURL, providerURL, apiKey string, logger *logrus.Logger) *Checker {
	return &Checker{
		geneDBURL:   geneDBURL,
		providerURL: providerURL,
		apiKey:      apiKey,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}
}

// ServiceHealth represents the probe result for one dependency
type ServiceHealth struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	ResponseTime int    `json:"response_time_ms"`
	Error        string `json:"error,omitempty"`
	LastChecked  string `json:"last_checked"`
}

// OverallHealth represents the overall system health
type OverallHealth struct {
	Status   string          `json:"status"`
	Services []ServiceHealth `json:"services"`
	Uptime   string          `json:"uptime"`
}

// CheckGeneDatabase probes the E-utilities einfo endpoint, which answers
// without a query and exercises the same host as the lookup calls.
func (h *Checker) CheckGeneDatabase(ctx context.Context) ServiceHealth {
	return h.probe(ctx, "ncbi_gene", h.geneDBURL+"/einfo.fcgi?db=gene&retmode=json", "")
}

// CheckNarrativeProvider probes the OpenRouter models listing, which
// validates both reachability and the credential.
func (h *Checker) CheckNarrativeProvider(ctx context.Context) ServiceHealth {
	return h.probe(ctx, "openrouter", h.providerURL+"/models", h.apiKey)
}

func (h *Checker) probe(ctx context.Context, name, probeURL, bearer string) ServiceHealth {
	start := time.Now()

	status := "healthy"
	errorMsg := ""

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		status = "unhealthy"
		errorMsg = err.Error()
	} else {
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		resp, err := h.httpClient.Do(req)
		if err != nil {
			status = "unhealthy"
			errorMsg = err.Error()
		} else {
			resp.Body.Close()
			if resp.StatusCode >= 400 {
				status = "unhealthy"
				errorMsg = fmt.Sprintf("HTTP %d", resp.StatusCode)
			}
		}
	}

	if status != "healthy" {
		h.logger.WithFields(logrus.Fields{
			"service": name,
			"error":   errorMsg,
		}).Error("Health check failed")
	}

	return ServiceHealth{
		Name:         name,
		Status:       status,
		ResponseTime: int(time.Since(start).Milliseconds()),
		Error:        errorMsg,
		LastChecked:  time.Now().Format(time.RFC3339),
	}
}

// CheckAll probes every dependency
func (h *Checker) CheckAll(ctx context.Context) OverallHealth {
	services := []ServiceHealth{
		h.CheckGeneDatabase(ctx),
		h.CheckNarrativeProvider(ctx),
	}

	overallStatus := "healthy"
	for _, service := range services {
		if service.Status == "unhealthy" {
			overallStatus = "unhealthy"
			break
		}
	}

	return OverallHealth{
		Status:   overallStatus,
		Services: services,
		Uptime:   h.getUptime(),
	}
}

var startTime = time.Now()

func (h *Checker) getUptime() string {
	return time.Since(startTime).String()
}
