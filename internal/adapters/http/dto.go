package http

import "github.com/front10k/tarrot7/internal/domain"

// AnalyzeResponse is the JSON envelope returned by POST /api/analyze.
// Analysis is always a complete report; Warning appears only when Source
// is "fallback".
type AnalyzeResponse struct {
	Analysis domain.Report `json:"analysis"`
	Source   string        `json:"source"`
	Warning  string        `json:"warning,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
