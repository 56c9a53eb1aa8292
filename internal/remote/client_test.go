package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfolio/portfolio-analytics/pkg/utils/errors"
)

func TestGetPortfolio(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/portfolios/pf-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pf-1","summary":{"name":"Remote Fund","totalValue":123456}}`))
	}))
	defer backend.Close()

	c := NewClient(backend.URL+"/api/v1", time.Second)
	p, err := c.GetPortfolio(context.Background(), "pf-1")
	require.NoError(t, err)
	assert.Equal(t, "pf-1", p.ID)
	assert.Equal(t, "Remote Fund", p.Summary.Name)
	assert.Equal(t, 123456.0, p.Summary.TotalValue)
}

func TestListPortfolios(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/portfolios/", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"pf-1"},{"id":"pf-2"}]`))
	}))
	defer backend.Close()

	c := NewClient(backend.URL+"/api/v1/", time.Second)
	portfolios, err := c.ListPortfolios(context.Background())
	require.NoError(t, err)
	require.Len(t, portfolios, 2)
	assert.Equal(t, "pf-2", portfolios[1].ID)
}

func TestBackendNotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer backend.Close()

	c := NewClient(backend.URL, time.Second)
	_, err := c.GetPortfolio(context.Background(), "missing")
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	c := NewClient(backend.URL, time.Second)
	_, err := c.GetPortfolio(context.Background(), "pf-1")
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnavailable))
}

func TestBackendUnreachable(t *testing.T) {
	// Closed server: connection refused.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	c := NewClient(backend.URL, 500*time.Millisecond)
	_, err := c.GetPortfolio(context.Background(), "pf-1")
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnavailable))
}
