package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/akasprzok/legendsnap/internal/prometheus"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	"github.com/sirupsen/logrus"
)

var errNoSource = errors.New("one of --query or --file is required")

// newClient is replaced in tests.
var newClient = prometheus.NewClient

// Source selects where chart data comes from: a live range query or a matrix
// saved to disk.
type Source struct {
	PrometheusURL string        `help:"URL of the Prometheus endpoint." short:"p" env:"LEGENDSNAP_PROMETHEUS_URL" name:"prometheus-url"`
	BearerToken   string        `name:"bearer-token" help:"Bearer token sent to Prometheus." env:"LEGENDSNAP_BEARER_TOKEN"`
	Query         string        `name:"query" short:"q" help:"PromQL range query to chart." xor:"source"`
	File          string        `name:"file" short:"f" help:"Read a saved matrix or query_range response instead of querying." type:"existingfile" xor:"source"`
	Range         time.Duration `name:"range" short:"r" help:"Range to query." default:"1h"`
	Step          time.Duration `name:"step" short:"s" help:"Step interval for range queries." default:"1m"`
}

// Describe returns a short label for status bars.
func (s Source) Describe() string {
	if s.File != "" {
		return s.File
	}
	return prometheus.FormatQuery(s.Query)
}

// Load fetches the matrix.
func (s Source) Load(ctx *Context) (model.Matrix, v1.Warnings, error) {
	log := ctx.Logger.WithField("source", s.Describe())

	switch {
	case s.File != "":
		data, err := os.ReadFile(s.File)
		if err != nil {
			return nil, nil, fmt.Errorf("reading matrix: %w", err)
		}
		matrix, err := prometheus.DecodeMatrix(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", s.File, err)
		}
		log.WithField("series", len(matrix)).Debug("loaded matrix from file")
		return matrix, nil, nil

	case s.Query != "":
		client, err := newClient(prometheus.Config{URL: s.PrometheusURL, BearerToken: s.BearerToken})
		if err != nil {
			return nil, nil, err
		}
		began := time.Now()
		end := began
		start := end.Add(-s.Range)
		matrix, warnings, err := client.QueryRange(s.Query, start, end, s.Step, ctx.Timeout)
		if err != nil {
			return nil, warnings, fmt.Errorf("querying prometheus: %w", err)
		}
		log.WithFields(logrus.Fields{
			"series":   len(matrix),
			"warnings": len(warnings),
			"took":     time.Since(began),
		}).Debug("range query finished")
		return matrix, warnings, nil

	default:
		return nil, nil, errNoSource
	}
}
