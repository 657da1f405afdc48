package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestCheckGeneDatabase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/einfo.fcgi", r.URL.Path)
		assert.Equal(t, "gene", r.URL.Query().Get("db"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"einforesult":{}}`))
	}))
	defer server.Close()

	checker := NewChecker(server.URL, "http://unused", "", testLogger())

	result := checker.CheckGeneDatabase(context.Background())
	assert.Equal(t, "ncbi_gene", result.Name)
	assert.Equal(t, "healthy", result.Status)
	assert.Empty(t, result.Error)

	_, err := time.Parse(time.RFC3339, result.LastChecked)
	assert.NoError(t, err)
}

func TestCheckNarrativeProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	checker := NewChecker("http://unused", server.URL, "test-key", testLogger())

	result := checker.CheckNarrativeProvider(context.Background())
	assert.Equal(t, "openrouter", result.Name)
	assert.Equal(t, "healthy", result.Status)
}

func TestCheck_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	checker := NewChecker(server.URL, server.URL, "test-key", testLogger())

	result := checker.CheckGeneDatabase(context.Background())
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "HTTP 500", result.Error)
}

func TestCheck_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	checker := NewChecker(server.URL, server.URL, "test-key", testLogger())

	result := checker.CheckNarrativeProvider(context.Background())
	assert.Equal(t, "unhealthy", result.Status)
	assert.NotEmpty(t, result.Error)
}

func TestCheckAll(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer healthy.Close()

	checker := NewChecker(healthy.URL, healthy.URL, "test-key", testLogger())

	overall := checker.CheckAll(context.Background())
	assert.Equal(t, "healthy", overall.Status)
	require.Len(t, overall.Services, 2)
	assert.Equal(t, "ncbi_gene", overall.Services[0].Name)
	assert.Equal(t, "openrouter", overall.Services[1].Name)
	assert.NotEmpty(t, overall.Uptime)
}

func TestCheckAll_OneDown(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer healthy.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	down.Close()

	checker := NewChecker(healthy.URL, down.URL, "test-key", testLogger())

	overall := checker.CheckAll(context.Background())
	assert.Equal(t, "unhealthy", overall.Status)
}
