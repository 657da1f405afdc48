// internal/api/handlers/search.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/models"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/services"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SearchHandler serves both gene search contracts over a single resolve
// then summarize pipeline.
type SearchHandler struct {
	resolver   *services.GeneResolver
	summarizer *services.NarrativeSummarizer
	logger     *logrus.Logger
}

func NewSearchHandler(
	resolver *services.GeneResolver,
	summarizer *services.NarrativeSummarizer,
	logger *logrus.Logger,
) *SearchHandler {
	return &SearchHandler{
		resolver:   resolver,
		summarizer: summarizer,
		logger:     logger,
	}
}

// searchContract maps the shared pipeline onto one wire contract: how the
// symbol is read from the body, the exact error wording, and the success
// payload shape.
type searchContract struct {
	name        string
	readSymbol  func(*gin.Context) string
	missingMsg  string
	failureMsg  func(symbol string, err error) string
	buildResult func(*models.GeneRecord, models.NarrativeResult) interface{}
}

var legacyContract = searchContract{
	name: "search",
	readSymbol: func(c *gin.Context) string {
		var req models.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return ""
		}
		return req.Gene
	},
	missingMsg: "Please enter a gene name",
	failureMsg: func(_ string, err error) string {
		return err.Error()
	},
	buildResult: func(record *models.GeneRecord, narrative models.NarrativeResult) interface{} {
		return models.SearchResponse{
			Success:     true,
			Gene:        record.Symbol,
			GeneID:      record.GeneID,
			Description: record.Description,
			Summary:     record.Summary,
			Chromosome:  record.Chromosome,
			MapLocation: record.MapLocation,
			Aliases:     record.Aliases,
			MIMNumber:   record.MIMNumber,
			Organism:    record.Organism,
			GeneType:    record.GeneType,
			AISummary:   narrative.Summary,
			Source:      "NCBI Gene Database",
			AIModel:     narrative.Model,
		}
	},
}

var terminalContract = searchContract{
	name: "api_search",
	readSymbol: func(c *gin.Context) string {
		var req models.APISearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return ""
		}
		return req.GeneName
	},
	missingMsg: "No gene name provided",
	failureMsg: func(symbol string, _ error) string {
		return fmt.Sprintf("Gene %s not found in database", symbol)
	},
	buildResult: func(record *models.GeneRecord, narrative models.NarrativeResult) interface{} {
		return models.APISearchResponse{
			Symbol:      record.Symbol,
			Name:        record.Description,
			GeneID:      record.GeneID,
			Chromosome:  record.Chromosome,
			Location:    record.MapLocation,
			Description: record.Summary,
			Aliases:     record.Aliases,
			MIMNumber:   record.MIMNumber,
			Organism:    record.Organism,
			GeneType:    record.GeneType,
			AISummary:   narrative.Summary,
			AIModel:     narrative.Model,
		}
	},
}

// HandleSearch serves the original /search contract.
func (h *SearchHandler) HandleSearch(c *gin.Context) {
	h.serveSearch(c, legacyContract)
}

// HandleAPISearch serves the terminal frontend /api/search contract.
func (h *SearchHandler) HandleAPISearch(c *gin.Context) {
	h.serveSearch(c, terminalContract)
}

// serveSearch runs the resolve then summarize pipeline and shapes the
// outcome through the endpoint's contract. Requests rejected for a missing
// symbol never reach either upstream.
func (h *SearchHandler) serveSearch(c *gin.Context, contract searchContract) {
	query := models.NewGeneQuery(contract.readSymbol(c))
	if query.Empty() {
		h.logger.WithField("endpoint", contract.name).Warn("Search rejected: no gene symbol provided")
		utils.ErrorJSON(c, http.StatusBadRequest, contract.missingMsg)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"gene":     query.Symbol,
		"endpoint": contract.name,
	}).Info("Processing gene search")

	record, err := h.resolver.Resolve(c.Request.Context(), query.Symbol)
	if err != nil {
		utils.ErrorJSON(c, http.StatusNotFound, contract.failureMsg(query.Symbol, err))
		return
	}

	narrative := h.summarizer.Summarize(c.Request.Context(), record)

	h.logger.WithFields(logrus.Fields{
		"gene":     record.Symbol,
		"gene_id":  record.GeneID,
		"endpoint": contract.name,
		"ai_model": narrative.Model,
	}).Info("Gene search completed")

	c.JSON(http.StatusOK, contract.buildResult(record, narrative))
}
