package reportshandler

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"staffdesk/internal/domain/employees"
	"staffdesk/internal/domain/reports"
	"staffdesk/internal/requestctx"
	"staffdesk/internal/transport/http/api"
)

type Handler struct {
	Employees *employees.Service
	Now       func() time.Time
}

func NewHandler(service *employees.Service) *Handler {
	return &Handler{Employees: service, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/roster.pdf", h.handleRoster)
}

func (h *Handler) handleRoster(w http.ResponseWriter, r *http.Request) {
	list, err := h.Employees.List(r.Context())
	if err != nil {
		requestctx.Logger(r.Context()).Error("roster list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteRosterPDF(&buf, list, h.Now()); err != nil {
		requestctx.Logger(r.Context()).Error("roster render failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "failed to render roster")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="employee-roster.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
