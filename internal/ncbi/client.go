package ncbi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public E-utilities endpoint for all Entrez
// databases, including Gene.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

const defaultTimeout = 10 * time.Second

// Client talks to the NCBI E-utilities. Every call is a read-only GET
// returning JSON, no credential required.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SearchGeneIDs looks up the gene ids matching a symbol, restricted to the
// human organism. An empty list means the symbol is unknown upstream.
func (c *Client) SearchGeneIDs(ctx context.Context, symbol string) ([]string, error) {
	params := url.Values{}
	params.Set("db", "gene")
	params.Set("term", fmt.Sprintf("%s[Gene Name] AND human[Organism]", symbol))
	params.Set("retmode", "json")

	var response esearchResponse
	if err := c.getJSON(ctx, "/esearch.fcgi", params, &response); err != nil {
		return nil, err
	}
	return response.ESearchResult.IDList, nil
}

// FetchGeneSummary retrieves the eSummary document for a single gene id.
func (c *Client) FetchGeneSummary(ctx context.Context, geneID string) (*GeneDocument, error) {
	params := url.Values{}
	params.Set("db", "gene")
	params.Set("id", geneID)
	params.Set("retmode", "json")

	var response esummaryResponse
	if err := c.getJSON(ctx, "/esummary.fcgi", params, &response); err != nil {
		return nil, err
	}

	raw, ok := response.Result[geneID]
	if !ok {
		return nil, fmt.Errorf("gene %s missing from esummary result", geneID)
	}

	var doc GeneDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gene document: %w", err)
	}
	return &doc, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	requestURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"params":   params.Encode(),
	}).Debug("Making eutils request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"endpoint":      endpoint,
		"status_code":   resp.StatusCode,
		"response_size": len(responseBody),
	}).Debug("Received eutils response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("eutils request failed with status %d: %s", resp.StatusCode, string(responseBody))
	}

	if err := json.Unmarshal(responseBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
