package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/prometheus/prometheus/promql/parser"
)

// Client runs the range queries that feed a chart.
type Client interface {
	QueryRange(query string, start, end time.Time, step time.Duration, timeout time.Duration) (model.Matrix, v1.Warnings, error)
}

// Config selects the Prometheus endpoint and its credentials.
type Config struct {
	URL string
	// BearerToken, when set, is sent as an Authorization header on every request.
	BearerToken string
}

type rangeClient struct {
	api v1.API
}

func NewClient(cfg Config) (Client, error) {
	apiCfg := api.Config{Address: cfg.URL}
	if cfg.BearerToken != "" {
		apiCfg.RoundTripper = bearerRoundTripper{token: cfg.BearerToken, next: api.DefaultRoundTripper}
	}
	client, err := api.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	return &rangeClient{api: v1.NewAPI(client)}, nil
}

func (c *rangeClient) QueryRange(query string, start, end time.Time, step time.Duration, timeout time.Duration) (model.Matrix, v1.Warnings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, warnings, err := c.api.QueryRange(ctx, query, v1.Range{Start: start, End: end, Step: step}, v1.WithTimeout(timeout))
	if err != nil {
		return nil, warnings, err
	}

	// A chart legend only makes sense for series over time.
	matrix, ok := result.(model.Matrix)
	if !ok {
		return nil, warnings, fmt.Errorf("unexpected result type: %s", result.Type())
	}
	return matrix, warnings, nil
}

// FormatQuery pretty-prints PromQL. Unparseable queries are returned as is.
func FormatQuery(query string) string {
	ast, err := parser.ParseExpr(query)
	if err != nil {
		return query
	}
	return ast.Pretty(0)
}

type bearerRoundTripper struct {
	token string
	next  http.RoundTripper
}

func (b bearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+b.token)
	return b.next.RoundTrip(req)
}
