package ncbi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Wire models for the E-utilities JSON responses. Only the fields the
// lookup pipeline consumes are declared; eSummary documents carry far more.

type esearchResponse struct {
	ESearchResult esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// esummaryResponse keeps the per-gene documents raw because the result
// object mixes gene ids with a "uids" index array.
type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

// GeneDocument is one eSummary document from the gene database.
type GeneDocument struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Summary       string     `json:"summary"`
	Chromosome    string     `json:"chromosome"`
	MapLocation   string     `json:"maplocation"`
	OtherAliases  StringList `json:"otheraliases"`
	MIM           StringList `json:"mim"`
	Organism      Organism   `json:"organism"`
	GeneticSource string     `json:"geneticsource"`
}

type Organism struct {
	ScientificName string `json:"scientificname"`
	CommonName     string `json:"commonname"`
	TaxID          int    `json:"taxid"`
}

// StringList tolerates the two shapes eSummary uses for list-ish fields: a
// JSON array of strings or numbers (mim) or a single pre-joined string
// (otheraliases).
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}

	switch trimmed[0] {
	case '"':
		var joined string
		if err := json.Unmarshal(trimmed, &joined); err != nil {
			return err
		}
		*s = splitJoined(joined)
		return nil
	case '[':
		var items []interface{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		out := make(StringList, 0, len(items))
		for _, item := range items {
			switch v := item.(type) {
			case string:
				if t := strings.TrimSpace(v); t != "" {
					out = append(out, t)
				}
			case float64:
				out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		*s = out
		return nil
	}
	return fmt.Errorf("unexpected JSON value for string list: %s", string(trimmed))
}

func splitJoined(joined string) StringList {
	parts := strings.Split(joined, ",")
	out := make(StringList, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Join renders the list as a comma separated string, or the placeholder
// when the list is empty.
func (s StringList) Join(placeholder string) string {
	if len(s) == 0 {
		return placeholder
	}
	return strings.Join(s, ", ")
}
