package ports

import (
	"io"

	"go.stellium.dev/stellium/internal/core/domain"
)

// ChartRenderer is the abstraction for presenting calculation results.
// It decouples the engine output from presentation, allowing the same
// chart to drive a styled terminal table or machine-readable JSON.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ChartRenderer interface {
	// RenderChart writes a formatted chart to the writer.
	RenderChart(w io.Writer, chart *domain.CalculatedChart) error

	// RenderReturn writes a found return event followed by its chart.
	RenderReturn(w io.Writer, event domain.ReturnEvent, chart *domain.CalculatedChart) error
}
