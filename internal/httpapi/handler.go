// Package httpapi exposes the composition service over HTTP.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mirelabs/arcanum/internal/export"
	"github.com/mirelabs/arcanum/internal/interpret"
	"github.com/mirelabs/arcanum/internal/journal"
	"github.com/mirelabs/arcanum/internal/reading"
)

const maxQuestionLen = 500

// Options carries the per-deployment knobs the handler applies to requests.
type Options struct {
	// DefaultDeck fills in the deck on requests that leave it empty.
	DefaultDeck string
	// InterpretTimeout bounds each alternate-voice call; zero means the
	// request context alone sets the limit.
	InterpretTimeout time.Duration
}

type Handler struct {
	svc      *reading.Service
	store    *journal.Store
	composer interpret.Composer
	pdf      *export.PDFRenderer
	log      *slog.Logger
	opts     Options
}

// NewHandler wires the API. store, composer, and pdf are optional: a nil
// store disables persistence and lookups, a nil composer disables the
// alternate voice, a nil pdf disables PDF export.
func NewHandler(svc *reading.Service, store *journal.Store, composer interpret.Composer, pdf *export.PDFRenderer, log *slog.Logger, opts Options) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, store: store, composer: composer, pdf: pdf, log: log, opts: opts}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/spreads", h.Spreads)
	e.POST("/v1/readings", h.Compose)
	e.GET("/v1/readings", h.List)
	e.GET("/v1/readings/:id", h.Get)
	e.GET("/v1/readings/:id/report.html", h.ReportHTML)
	e.GET("/v1/readings/:id/report.pdf", h.ReportPDF)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Spreads(c echo.Context) error {
	spreads := h.svc.Spreads()
	sort.Strings(spreads)
	return c.JSON(http.StatusOK, SpreadsResponse{Spreads: spreads})
}

func (h *Handler) Compose(c echo.Context) error {
	var req ComposeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
	}
	if len(req.Question) > maxQuestionLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question must be at most 500 characters"})
	}
	if req.Deck == "" {
		req.Deck = h.opts.DefaultDeck
	}

	r, err := h.svc.Compose(c.Request().Context(), req.Request)
	if err != nil {
		return h.mapError(c, err)
	}

	resp := ReadingResponse{Reading: r}
	requestID, _ := c.Get("request_id").(string)
	resp.Meta.RequestID = requestID

	if req.Interpret && h.composer != nil {
		ctx := c.Request().Context()
		if h.opts.InterpretTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.opts.InterpretTimeout)
			defer cancel()
		}
		voice, err := h.composer.Embellish(ctx, r)
		if err != nil {
			// The deterministic reading stands on its own.
			h.log.Warn("alternate voice failed", "request_id", requestID, "reading_id", r.ID, "error", err)
		} else {
			resp.AlternateVoice = voice
		}
	}

	persist := h.store != nil && (req.Persist == nil || *req.Persist)
	if persist {
		if err := h.store.Save(r); err != nil {
			h.log.Error("journal save failed", "request_id", requestID, "reading_id", r.ID, "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to persist reading"})
		}
		resp.Meta.Persisted = true
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) List(c echo.Context) error {
	if h.store == nil {
		return c.JSON(http.StatusNotImplemented, ErrorResponse{Error: "journal disabled"})
	}
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 200 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer between 1 and 200"})
		}
		limit = parsed
	}
	readings, err := h.store.Recent(limit)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, ListResponse{Readings: readings})
}

func (h *Handler) Get(c echo.Context) error {
	r, err := h.lookup(c)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) ReportHTML(c echo.Context) error {
	r, err := h.lookup(c)
	if err != nil {
		return h.mapError(c, err)
	}
	doc, err := export.RenderHTML(r)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.HTML(http.StatusOK, doc)
}

func (h *Handler) ReportPDF(c echo.Context) error {
	if h.pdf == nil {
		return c.JSON(http.StatusNotImplemented, ErrorResponse{Error: "pdf export disabled"})
	}
	r, err := h.lookup(c)
	if err != nil {
		return h.mapError(c, err)
	}
	blob, err := h.pdf.Render(c.Request().Context(), r)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Blob(http.StatusOK, "application/pdf", blob)
}

func (h *Handler) lookup(c echo.Context) (*reading.Reading, error) {
	if h.store == nil {
		return nil, echo.NewHTTPError(http.StatusNotImplemented, "journal disabled")
	}
	return h.store.Get(c.Param("id"))
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return c.JSON(httpErr.Code, ErrorResponse{Error: errorMessage(httpErr)})
	case errors.Is(err, reading.ErrUnknownSpread):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, journal.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		h.log.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func errorMessage(e *echo.HTTPError) string {
	if s, ok := e.Message.(string); ok {
		return s
	}
	return http.StatusText(e.Code)
}
