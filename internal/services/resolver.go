package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/models"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/ncbi"
	"github.com/sirupsen/logrus"
)

// ErrGeneNotFound reports a symbol with no match in the gene database. It
// is an expected outcome for unknown symbols, not a dependency fault. The
// text is wire-visible on the /search endpoint.
var ErrGeneNotFound = errors.New("Gene not found")

// Placeholder values for eSummary fields the upstream omitted.
const (
	noDescription   = "No description available"
	noSummary       = "No summary available"
	unknownField    = "Unknown"
	noAliases       = "None"
	noMIMNumber     = "Not available"
	defaultOrganism = "Homo sapiens"
)

// UpstreamError wraps a failure from either E-utilities call.
type UpstreamError struct {
	Stage string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gene %s lookup failed: %v", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// GeneResolver turns a gene symbol into a GeneRecord through the two-step
// eSearch then eSummary flow.
type GeneResolver struct {
	client *ncbi.Client
	logger *logrus.Logger
}

func NewGeneResolver(client *ncbi.Client, logger *logrus.Logger) *GeneResolver {
	return &GeneResolver{
		client: client,
		logger: logger,
	}
}

// Resolve maps a normalized symbol to its gene record. It returns
// ErrGeneNotFound for unknown symbols and an UpstreamError when either
// E-utilities call fails.
func (r *GeneResolver) Resolve(ctx context.Context, symbol string) (*models.GeneRecord, error) {
	r.logger.WithField("gene", symbol).Debug("Resolving gene symbol")

	ids, err := r.client.SearchGeneIDs(ctx, symbol)
	if err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"gene":  symbol,
			"stage": "search",
		}).Error("Gene id search failed")
		return nil, &UpstreamError{Stage: "search", Err: err}
	}
	if len(ids) == 0 {
		r.logger.WithField("gene", symbol).Info("Gene not found upstream")
		return nil, ErrGeneNotFound
	}

	geneID := ids[0]
	doc, err := r.client.FetchGeneSummary(ctx, geneID)
	if err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"gene":    symbol,
			"gene_id": geneID,
			"stage":   "summary",
		}).Error("Gene summary fetch failed")
		return nil, &UpstreamError{Stage: "summary", Err: err}
	}

	record := buildRecord(symbol, geneID, doc)
	r.logger.WithFields(logrus.Fields{
		"gene":    record.Symbol,
		"gene_id": record.GeneID,
	}).Debug("Gene resolved")
	return record, nil
}

// buildRecord maps an eSummary document onto a GeneRecord, substituting
// placeholder defaults for anything the upstream left empty.
func buildRecord(symbol, geneID string, doc *ncbi.GeneDocument) *models.GeneRecord {
	return &models.GeneRecord{
		Symbol:      orDefault(doc.Name, symbol),
		GeneID:      geneID,
		Description: orDefault(doc.Description, noDescription),
		Summary:     orDefault(doc.Summary, noSummary),
		Chromosome:  orDefault(doc.Chromosome, unknownField),
		MapLocation: orDefault(doc.MapLocation, unknownField),
		Aliases:     doc.OtherAliases.Join(noAliases),
		MIMNumber:   doc.MIM.Join(noMIMNumber),
		Organism:    orDefault(doc.Organism.ScientificName, defaultOrganism),
		GeneType:    orDefault(doc.GeneticSource, unknownField),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
