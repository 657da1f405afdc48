package models

import "strings"

// Everything in this package is request-scoped: produced once per search,
// discarded when the response is sent.

// NarrativeModelError is the sentinel model name attached to a
// NarrativeResult when narrative generation failed.
const NarrativeModelError = "Error"

// GeneQuery is the normalized gene symbol extracted from a request body.
type GeneQuery struct {
	Symbol string
}

// NewGeneQuery trims surrounding whitespace and upper-cases the raw input,
// matching how gene symbols are written in the NCBI Gene database.
func NewGeneQuery(raw string) GeneQuery {
	return GeneQuery{Symbol: strings.ToUpper(strings.TrimSpace(raw))}
}

// Empty reports whether the caller provided no usable symbol.
func (q GeneQuery) Empty() bool {
	return q.Symbol == ""
}

// GeneRecord is the structured result of resolving a symbol against the
// NCBI Gene database. Optional upstream fields are already filled with
// their placeholder defaults, so a record never carries an empty field.
type GeneRecord struct {
	Symbol      string
	GeneID      string
	Description string
	Summary     string
	Chromosome  string
	MapLocation string
	Aliases     string
	MIMNumber   string
	Organism    string
	GeneType    string
}

// NarrativeResult is the AI-generated synopsis for a resolved gene. Model
// names the model that produced the text, or NarrativeModelError when
// generation failed and Summary holds the failure message instead.
type NarrativeResult struct {
	Summary string
	Model   string
}
