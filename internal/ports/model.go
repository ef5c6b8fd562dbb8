package ports

import (
	"context"

	"github.com/front10k/tarrot7/internal/domain"
)

// ReportModel generates the raw text of an analysis report for a payload.
// Implementations return the model's output verbatim (trimmed); callers own
// parsing and sanitization. An empty string with a nil error means the
// service answered with nothing to say.
type ReportModel interface {
	Generate(ctx context.Context, payload domain.ReadingPayload) (string, error)
}
