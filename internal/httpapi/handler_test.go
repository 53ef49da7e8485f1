package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mirelabs/arcanum/internal/interpret"
	"github.com/mirelabs/arcanum/internal/journal"
	"github.com/mirelabs/arcanum/internal/reading"
)

func newTestServer(t *testing.T) (*echo.Echo, *journal.Store) {
	return newTestServerWith(t, nil, Options{})
}

func newTestServerWith(t *testing.T, composer interpret.Composer, opts Options) (*echo.Echo, *journal.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	e := echo.New()
	e.Use(RequestIDMiddleware())
	NewHandler(reading.NewService(log), store, composer, nil, log, opts).Register(e)
	return e, store
}

const composeBody = `{
	"spreadKey": "three_card",
	"question": "What should I focus on?",
	"context": "career",
	"seed": 7,
	"cards": [
		{"card": "Eight of Pentacles", "suit": "pentacles", "rank": "Eight", "position": "Past — what shaped this (Card 1)", "orientation": "upright"},
		{"card": "The Tower", "cardNumber": 16, "position": "Present — where you stand (Card 2)", "orientation": "reversed"},
		{"card": "The Star", "number": 17, "position": "Future — where this leads (Card 3)", "orientation": "upright"}
	]
}`

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestSpreads(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/v1/spreads", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp SpreadsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Spreads) != 6 {
		t.Fatalf("spreads = %v", resp.Spreads)
	}
}

func TestComposePersistsAndFetches(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/readings", composeBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("compose status = %d body = %s", rec.Code, rec.Body.String())
	}
	var resp ReadingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Reading == nil || resp.Reading.ID == "" {
		t.Fatalf("response has no reading: %s", rec.Body.String())
	}
	if !resp.Meta.Persisted {
		t.Errorf("reading was not persisted")
	}
	if rec.Header().Get(headerRequestID) == "" {
		t.Errorf("no request id header set")
	}

	get := doJSON(e, http.MethodGet, "/v1/readings/"+resp.Reading.ID, "")
	if get.Code != http.StatusOK {
		t.Fatalf("get status = %d", get.Code)
	}
	var fetched reading.Reading
	if err := json.Unmarshal(get.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("unmarshal fetched: %v", err)
	}
	if fetched.Narrative != resp.Reading.Narrative {
		t.Errorf("fetched narrative differs from composed one")
	}

	list := doJSON(e, http.MethodGet, "/v1/readings?limit=5", "")
	if list.Code != http.StatusOK {
		t.Fatalf("list status = %d", list.Code)
	}
	var lr ListResponse
	if err := json.Unmarshal(list.Body.Bytes(), &lr); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(lr.Readings) != 1 {
		t.Errorf("list returned %d readings", len(lr.Readings))
	}
}

type recordingComposer struct {
	voice       string
	hadDeadline bool
}

func (rc *recordingComposer) Embellish(ctx context.Context, _ *reading.Reading) (string, error) {
	_, rc.hadDeadline = ctx.Deadline()
	return rc.voice, nil
}

func TestComposeAppliesDefaultDeck(t *testing.T) {
	e, _ := newTestServerWith(t, nil, Options{DefaultDeck: "thoth"})

	rec := doJSON(e, http.MethodPost, "/v1/readings", composeBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("compose status = %d body = %s", rec.Code, rec.Body.String())
	}
	var resp ReadingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Reading.Deck != "thoth" {
		t.Errorf("deck = %q, want configured default thoth", resp.Reading.Deck)
	}

	explicit := strings.Replace(composeBody, `"seed": 7,`, `"seed": 7, "deck": "rider_waite",`, 1)
	rec = doJSON(e, http.MethodPost, "/v1/readings", explicit)
	if rec.Code != http.StatusOK {
		t.Fatalf("compose status = %d body = %s", rec.Code, rec.Body.String())
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Reading.Deck != "rider_waite" {
		t.Errorf("deck = %q, an explicit deck should win over the default", resp.Reading.Deck)
	}
}

func TestInterpretTimeoutBoundsComposerCall(t *testing.T) {
	composer := &recordingComposer{voice: "a second telling of the same cards"}
	e, _ := newTestServerWith(t, composer, Options{InterpretTimeout: time.Minute})

	body := strings.Replace(composeBody, `"seed": 7,`, `"seed": 7, "interpret": true,`, 1)
	rec := doJSON(e, http.MethodPost, "/v1/readings", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("compose status = %d body = %s", rec.Code, rec.Body.String())
	}
	var resp ReadingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.AlternateVoice != composer.voice {
		t.Errorf("alternate voice = %q", resp.AlternateVoice)
	}
	if !composer.hadDeadline {
		t.Error("composer context should carry the configured deadline")
	}
}

func TestComposeUnknownSpreadIs400(t *testing.T) {
	e, _ := newTestServer(t)
	body := strings.Replace(composeBody, "three_card", "horseshoe", 1)
	rec := doJSON(e, http.MethodPost, "/v1/readings", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
}

func TestComposeOversizedQuestionIs400(t *testing.T) {
	e, _ := newTestServer(t)
	body := strings.Replace(composeBody, "What should I focus on?", strings.Repeat("x", 501), 1)
	rec := doJSON(e, http.MethodPost, "/v1/readings", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetMissingIs404(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/v1/readings/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestReportHTML(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/v1/readings", composeBody)
	var resp ReadingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	html := doJSON(e, http.MethodGet, "/v1/readings/"+resp.Reading.ID+"/report.html", "")
	if html.Code != http.StatusOK {
		t.Fatalf("status = %d", html.Code)
	}
	if !strings.Contains(html.Body.String(), "<!doctype html>") {
		t.Errorf("report is not an HTML document")
	}
}

func TestPDFDisabledIs501(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/v1/readings", composeBody)
	var resp ReadingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	pdf := doJSON(e, http.MethodGet, "/v1/readings/"+resp.Reading.ID+"/report.pdf", "")
	if pdf.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d", pdf.Code)
	}
}
