package services

import (
	"context"
	"fmt"

	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/models"
	"github.com/faisalshariff123/Gene-Characteristics-Identifier/internal/openrouter"
	"github.com/sirupsen/logrus"
)

// summaryPromptTemplate asks the model for a clinician-facing synopsis
// built from the resolved gene metadata.
const summaryPromptTemplate = `You are a bioinformatics expert. Create a brief 3-4 sentence summary for researchers and clinicians.

Gene: %s
Description: %s
Details: %s

Focus on:
1. What this gene does (functional role)
2. Any disease connections
3. Clinical significance

Keep it concise and professional.`

// summaryDetailLimit caps how much of the long-form NCBI summary goes into
// the prompt.
const summaryDetailLimit = 500

// NarrativeSummarizer generates the AI synopsis for a resolved gene.
type NarrativeSummarizer struct {
	client *openrouter.Client
	logger *logrus.Logger
}

func NewNarrativeSummarizer(client *openrouter.Client, logger *logrus.Logger) *NarrativeSummarizer {
	return &NarrativeSummarizer{
		client: client,
		logger: logger,
	}
}

// Summarize produces the narrative synopsis for a record. It never fails:
// when generation is unavailable the result carries a readable failure
// message and the error model sentinel, so a resolved gene still returns
// its metadata.
func (s *NarrativeSummarizer) Summarize(ctx context.Context, record *models.GeneRecord) models.NarrativeResult {
	prompt := buildPrompt(record)

	completion, err := s.client.CreateCompletion(ctx, prompt)
	if err != nil {
		s.logger.WithError(err).WithField("gene", record.Symbol).Error("Narrative generation failed")
		return models.NarrativeResult{
			Summary: failureText(err),
			Model:   models.NarrativeModelError,
		}
	}

	s.logger.WithFields(logrus.Fields{
		"gene":  record.Symbol,
		"model": completion.Model,
	}).Debug("Narrative generated")
	return models.NarrativeResult{
		Summary: completion.Text,
		Model:   completion.Model,
	}
}

func buildPrompt(record *models.GeneRecord) string {
	return fmt.Sprintf(summaryPromptTemplate,
		record.Symbol,
		record.Description,
		truncate(record.Summary, summaryDetailLimit),
	)
}

// truncate cuts text to at most limit runes, never splitting a rune.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// failureText renders a generation failure as the payload text. A failure
// the provider itself reported keeps the provider's message; transport
// failures get the generic unavailable wording.
func failureText(err error) string {
	if message, fromProvider := openrouter.ProviderMessage(err); fromProvider {
		return fmt.Sprintf("Could not generate AI summary. Error: %s", message)
	}
	return fmt.Sprintf("AI summary unavailable: %v", err)
}
