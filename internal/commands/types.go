package commands

import (
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// TUIState represents the current state of the TUI.
type TUIState int

const (
	StateLoading TUIState = iota
	StateResults
	StateError
)

func (s TUIState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateResults:
		return "Results"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// loadResultMsg carries the matrix loaded for the legend.
type loadResultMsg struct {
	warnings v1.Warnings
	matrix   model.Matrix
	err      error
	duration time.Duration
}
