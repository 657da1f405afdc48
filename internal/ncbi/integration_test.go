//go:build integration
// +build integration

package ncbi

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the real E-utilities endpoints. Run with:
//
//	NCBI_INTEGRATION=1 go test -tags=integration ./internal/ncbi/
func TestIntegration_ResolveBRCA1(t *testing.T) {
	if os.Getenv("NCBI_INTEGRATION") == "" {
		t.Skip("NCBI_INTEGRATION not set - skipping integration tests")
	}

	client := NewClient(DefaultBaseURL, 10*time.Second, testLogger())
	ctx := context.Background()

	ids, err := client.SearchGeneIDs(ctx, "BRCA1")
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	doc, err := client.FetchGeneSummary(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "BRCA1", doc.Name)
	assert.Equal(t, "17", doc.Chromosome)
	assert.Equal(t, "Homo sapiens", doc.Organism.ScientificName)
}

func TestIntegration_UnknownSymbol(t *testing.T) {
	if os.Getenv("NCBI_INTEGRATION") == "" {
		t.Skip("NCBI_INTEGRATION not set - skipping integration tests")
	}

	client := NewClient(DefaultBaseURL, 10*time.Second, testLogger())

	ids, err := client.SearchGeneIDs(context.Background(), "ZZZZNOTAGENE99")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
