package models

// Wire types for the two search contracts. The /search shape predates the
// CRT terminal frontend; /api/search is what that frontend consumes. The
// field names differ but the values are shared, so both responses are
// built from the same GeneRecord.

type SearchRequest struct {
	Gene string `json:"gene"`
}

type APISearchRequest struct {
	GeneName string `json:"gene_name"`
}

// SearchResponse is the original /search payload.
type SearchResponse struct {
	Success     bool   `json:"success"`
	Gene        string `json:"gene"`
	GeneID      string `json:"gene_id"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Chromosome  string `json:"chromosome"`
	MapLocation string `json:"map_location"`
	Aliases     string `json:"aliases"`
	MIMNumber   string `json:"mim_number"`
	Organism    string `json:"organism"`
	GeneType    string `json:"gene_type"`
	AISummary   string `json:"ai_summary"`
	Source      string `json:"source"`
	AIModel     string `json:"ai_model"`
}

// APISearchResponse is the /api/search payload. Note the renames relative
// to SearchResponse: name carries the short NCBI description, description
// carries the long-form summary and location carries the map location.
type APISearchResponse struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	GeneID      string `json:"gene_id"`
	Chromosome  string `json:"chromosome"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Aliases     string `json:"aliases"`
	MIMNumber   string `json:"mim_number"`
	Organism    string `json:"organism"`
	GeneType    string `json:"gene_type"`
	AISummary   string `json:"ai_summary"`
	AIModel     string `json:"ai_model"`
}

// ErrorResponse is the error payload shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the static /test payload.
type StatusResponse struct {
	Status          string   `json:"status"`
	Message         string   `json:"message"`
	AIProvider      string   `json:"ai_provider"`
	AvailableModels []string `json:"available_models"`
}
