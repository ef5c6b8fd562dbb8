package app

import (
	"context"
	"log/slog"

	"github.com/goccy/go-json"

	"github.com/front10k/tarrot7/internal/domain"
	"github.com/front10k/tarrot7/internal/ports"
)

// Source identifies which path produced the analysis.
type Source string

const (
	SourceExternal Source = "external"
	SourceFallback Source = "fallback"
)

// tier is the resolved degradation tier for one request. Only tierFailed
// surfaces to the client (as source "fallback" plus a warning); the empty
// and unparseable tiers ship the fallback content under source "external"
// because the external call itself succeeded.
type tier int

const (
	tierExternal tier = iota
	tierExternalEmpty
	tierExternalUnparseable
	tierFailed
)

func (t tier) String() string {
	switch t {
	case tierExternal:
		return "external"
	case tierExternalEmpty:
		return "external_empty"
	case tierExternalUnparseable:
		return "external_unparseable"
	default:
		return "failed"
	}
}

// Analysis is the application-level result. There is no error variant: a
// request that reaches Analyze always gets a complete Report.
type Analysis struct {
	Report  domain.Report
	Source  Source
	Warning string
}

// AnalysisService turns a payload into a report, degrading to the
// deterministic fallback whenever the external model cannot deliver.
type AnalysisService struct {
	model     ports.ReportModel
	templates domain.Templates
	logger    *slog.Logger
}

func NewAnalysisService(model ports.ReportModel, templates domain.Templates, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		model:     model,
		templates: templates,
		logger:    logger,
	}
}

// Analyze never fails. The fallback report is computed eagerly: it is the
// safety net for every tier and the sanitizer's reference for the rest.
func (s *AnalysisService) Analyze(ctx context.Context, payload domain.ReadingPayload) Analysis {
	fallback := domain.FallbackReport(payload, s.templates)

	report, t, err := s.generate(ctx, payload, fallback)
	if t == tierFailed {
		s.logger.WarnContext(ctx, "generation failed, serving fallback", "error", err)
		return Analysis{
			Report:  fallback,
			Source:  SourceFallback,
			Warning: s.templates.FallbackWarning,
		}
	}

	s.logger.DebugContext(ctx, "analysis resolved", "tier", t.String())
	return Analysis{Report: report, Source: SourceExternal}
}

// generate maps the model call onto the degradation tiers. Every tier
// yields a valid report; err is non-nil only for tierFailed.
func (s *AnalysisService) generate(ctx context.Context, payload domain.ReadingPayload, fallback domain.Report) (domain.Report, tier, error) {
	text, err := s.model.Generate(ctx, payload)
	if err != nil {
		return fallback, tierFailed, err
	}
	if text == "" {
		return fallback, tierExternalEmpty, nil
	}

	var candidate any
	if err := json.Unmarshal([]byte(text), &candidate); err != nil {
		return fallback, tierExternalUnparseable, nil
	}

	return domain.SanitizeReport(candidate, fallback), tierExternal, nil
}
