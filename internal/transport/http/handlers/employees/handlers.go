package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"staffdesk/internal/domain/audit"
	"staffdesk/internal/domain/employees"
	"staffdesk/internal/requestctx"
	"staffdesk/internal/transport/http/api"
	"staffdesk/internal/transport/http/shared"
)

type Handler struct {
	Service *employees.Service
	// Audit, when set, receives one event per successful write.
	Audit audit.Recorder
}

func NewHandler(service *employees.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "Database query failed")
		return
	}
	api.Success(w, list)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employees.Employee
	if !decodePayload(w, r, &payload) {
		return
	}

	created, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		h.fail(w, r, err, "Database insert failed")
		return
	}
	h.record(r, audit.ActionCreate, created.EmployeeID, created)
	api.Created(w, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.EmployeeIDParam(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload updatePayload
	if !decodePayload(w, r, &payload) {
		return
	}

	updated, err := h.Service.Update(r.Context(), id, payload.Employee)
	if err != nil {
		h.fail(w, r, err, "Database update failed")
		return
	}
	h.record(r, audit.ActionUpdate, id, updated)
	api.Success(w, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.EmployeeIDParam(r, "employeeID")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err, "Database delete failed")
		return
	}
	h.record(r, audit.ActionDelete, id, nil)
	api.NoContent(w)
}

// record writes an audit event. A failed write is logged and never fails
// the request that already succeeded.
func (h *Handler) record(r *http.Request, action string, id employees.ID, after any) {
	if h.Audit == nil {
		return
	}
	logger := requestctx.Logger(r.Context())
	evt, err := audit.NewEvent(action, int64(id), requestctx.GetRequestID(r.Context()), shared.ClientIP(r), after)
	if err == nil {
		err = h.Audit.Record(r.Context(), evt)
	}
	if err != nil {
		logger.Warn("audit record failed", "action", action, "employeeId", id.String(), "err", err)
	}
}

// fail maps domain errors onto status codes. storeMessage is what the
// client sees for unexpected store failures.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, storeMessage string) {
	var verr *employees.ValidationError
	switch {
	case errors.As(err, &verr):
		api.Fail(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, employees.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "Employee not found")
	case errors.Is(err, employees.ErrConflict):
		requestctx.Logger(r.Context()).Warn("employee write rejected", "err", err)
		api.Fail(w, http.StatusConflict, "Employee ID or email already exists")
	default:
		requestctx.Logger(r.Context()).Error("employee request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		api.Fail(w, http.StatusInternalServerError, storeMessage)
	}
}

// updatePayload shadows EMPLOYEE_ID so the body's id is never decoded. The
// path owns the key.
type updatePayload struct {
	employees.Employee
	EmployeeID json.RawMessage `json:"EMPLOYEE_ID"`
}

func decodePayload(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return false
	}
	return true
}
