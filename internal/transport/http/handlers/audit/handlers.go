package audithandler

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"staffdesk/internal/domain/audit"
	"staffdesk/internal/requestctx"
	"staffdesk/internal/transport/http/api"
	"staffdesk/internal/transport/http/shared"
)

const exportLimit = 10000

type Handler struct {
	Log audit.Log
}

func NewHandler(log audit.Log) *Handler {
	return &Handler{Log: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/audit", func(r chi.Router) {
		r.Get("/events", h.handleListEvents)
		r.Get("/events/export", h.handleExportEvents)
	})
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	page := shared.ParsePagination(r, 100, 500)

	total, err := h.Log.Count(r.Context(), filter)
	if err != nil {
		requestctx.Logger(r.Context()).Error("audit count failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "failed to count audit events")
		return
	}
	events, err := h.Log.List(r.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		requestctx.Logger(r.Context()).Error("audit list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "failed to list audit events")
		return
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	api.Success(w, events)
}

func (h *Handler) handleExportEvents(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	events, err := h.Log.List(r.Context(), filter, exportLimit, 0)
	if err != nil {
		requestctx.Logger(r.Context()).Error("audit export failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "failed to export audit events")
		return
	}

	logger := requestctx.Logger(r.Context())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=audit-events.csv")
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "action", "employee_id", "request_id", "ip", "created_at"}); err != nil {
		logger.Warn("audit export header failed", "err", err)
	}
	for _, evt := range events {
		row := []string{
			strconv.FormatInt(evt.ID, 10),
			evt.Action,
			strconv.FormatInt(evt.EmployeeID, 10),
			evt.RequestID,
			evt.IP,
			evt.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			logger.Warn("audit export row failed", "err", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.Warn("audit export flush failed", "err", err)
	}
}

func parseFilter(w http.ResponseWriter, r *http.Request) (audit.Filter, bool) {
	filter := audit.Filter{Action: strings.TrimSpace(r.URL.Query().Get("action"))}
	if raw := strings.TrimSpace(r.URL.Query().Get("employeeId")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			api.Fail(w, http.StatusBadRequest, "invalid employeeId")
			return audit.Filter{}, false
		}
		filter.EmployeeID = id
	}
	return filter, true
}
