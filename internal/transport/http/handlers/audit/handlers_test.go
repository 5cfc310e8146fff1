package audithandler

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"staffdesk/internal/domain/audit"
)

func seededRouter(t *testing.T) http.Handler {
	t.Helper()
	log := audit.NewMemoryLog()
	for _, evt := range []audit.Event{
		{Action: audit.ActionCreate, EmployeeID: 100, RequestID: "a"},
		{Action: audit.ActionUpdate, EmployeeID: 100, RequestID: "b"},
		{Action: audit.ActionCreate, EmployeeID: 200, RequestID: "c"},
	} {
		if err := log.Record(context.Background(), evt); err != nil {
			t.Fatal(err)
		}
	}
	router := chi.NewRouter()
	NewHandler(log).RegisterRoutes(router)
	return router
}

func TestListEvents(t *testing.T) {
	h := seededRouter(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/audit/events?employeeId=100&limit=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Total-Count") != "2" {
		t.Fatalf("expected total 2, got %q", rec.Header().Get("X-Total-Count"))
	}
	var events []audit.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(events) != 1 || events[0].RequestID != "b" {
		t.Fatalf("expected newest event for 100, got %+v", events)
	}
}

func TestListEventsRejectsBadEmployeeID(t *testing.T) {
	rec := httptest.NewRecorder()
	seededRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/audit/events?employeeId=x", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExportEvents(t *testing.T) {
	rec := httptest.NewRecorder()
	seededRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/audit/events/export?action=employee.create", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv") {
		t.Fatalf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
	rows, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 || rows[0][1] != "action" || rows[1][2] != "200" {
		t.Fatalf("unexpected export %v", rows)
	}
}

type brokenCountLog struct {
	*audit.MemoryLog
}

func (brokenCountLog) Count(context.Context, audit.Filter) (int, error) {
	return 0, errors.New("count unavailable")
}

func TestListEventsFailsWhenCountFails(t *testing.T) {
	router := chi.NewRouter()
	NewHandler(brokenCountLog{audit.NewMemoryLog()}).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/audit/events", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Header().Get("X-Total-Count") != "" {
		t.Fatalf("expected no total on failure, got %q", rec.Header().Get("X-Total-Count"))
	}
}
