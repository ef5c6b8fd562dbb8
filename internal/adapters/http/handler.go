package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/front10k/tarrot7/internal/app"
	"github.com/front10k/tarrot7/internal/domain"
)

// MaxBodyBytes caps the request body. The declared Content-Length is
// checked against it up front, and the actual read is bounded by it too.
const MaxBodyBytes = 100_000

type Handler struct {
	svc       *app.AnalysisService
	templates domain.Templates
}

func NewHandler(svc *app.AnalysisService, templates domain.Templates) *Handler {
	return &Handler{svc: svc, templates: templates}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/api/analyze", h.Analyze)
	e.OPTIONS("/api/analyze", h.Preflight)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Analyze validates the request shape, then delegates to the service.
// A request that passes validation always gets a 200 with a complete
// report; generation trouble only ever changes source/warning.
func (h *Handler) Analyze(c echo.Context) error {
	req := c.Request()

	contentType := strings.ToLower(req.Header.Get(echo.HeaderContentType))
	if !strings.Contains(contentType, echo.MIMEApplicationJSON) {
		return h.json(c, http.StatusUnsupportedMediaType, ErrorResponse{Error: h.templates.ErrContentType})
	}

	if req.ContentLength > MaxBodyBytes {
		return h.json(c, http.StatusRequestEntityTooLarge, ErrorResponse{Error: h.templates.ErrBodyTooLarge})
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), req.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return h.json(c, http.StatusRequestEntityTooLarge, ErrorResponse{Error: h.templates.ErrBodyTooLarge})
		}
		return h.json(c, http.StatusBadRequest, ErrorResponse{Error: h.templates.ErrBadJSON})
	}

	payload, err := domain.ParsePayload(body)
	if err != nil {
		return h.json(c, http.StatusBadRequest, ErrorResponse{Error: h.templates.ErrBadJSON})
	}

	analysis := h.svc.Analyze(req.Context(), payload)

	return h.json(c, http.StatusOK, AnalyzeResponse{
		Analysis: analysis.Report,
		Source:   string(analysis.Source),
		Warning:  analysis.Warning,
	})
}

// Preflight answers CORS preflight checks with an empty 204.
func (h *Handler) Preflight(c echo.Context) error {
	header := c.Response().Header()
	header.Set(echo.HeaderAccessControlAllowMethods, "POST, OPTIONS")
	header.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, X-API-Key")
	header.Set(echo.HeaderAccessControlMaxAge, "86400")
	return c.NoContent(http.StatusNoContent)
}

// json writes a JSON response with the headers every endpoint promises:
// an explicit utf-8 content type (the serializer alone writes the bare
// media type) and no-store caching.
func (h *Handler) json(c echo.Context, status int, body any) error {
	header := c.Response().Header()
	header.Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	header.Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(status, body)
}
