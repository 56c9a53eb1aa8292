package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/quantfolio/portfolio-analytics/pkg/models"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/errors"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/logger"
)

// Client talks to the upstream dashboard backend. The backend serves the
// same portfolio aggregate shape this service synthesizes; callers treat
// it as an opaque data source and fall back to synthesized data when it
// is unreachable, never the reverse.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a client for the given base URL (e.g.
// "http://backend:8000/api/v1").
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger.GetLogger("remote.client"),
	}
}

// GetPortfolio fetches one portfolio aggregate from the backend.
func (c *Client) GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := c.getJSON(ctx, "/portfolios/"+id, &portfolio); err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// ListPortfolios fetches the portfolio list from the backend.
func (c *Client) ListPortfolios(ctx context.Context) ([]*models.Portfolio, error) {
	var portfolios []*models.Portfolio
	if err := c.getJSON(ctx, "/portfolios/", &portfolios); err != nil {
		return nil, err
	}
	return portfolios, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build backend request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnf("Backend unreachable for %s: %v", path, err)
		return errors.Unavailable(fmt.Sprintf("backend unreachable: %v", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFound("backend has no resource at " + path)
	case resp.StatusCode != http.StatusOK:
		return errors.Unavailable(fmt.Sprintf("backend returned status %d for %s", resp.StatusCode, path))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode backend response")
	}
	return nil
}
