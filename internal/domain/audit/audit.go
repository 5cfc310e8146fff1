// Package audit keeps a trail of employee writes.
package audit

import (
	"context"
	"encoding/json"
	"time"
)

const (
	ActionCreate = "employee.create"
	ActionUpdate = "employee.update"
	ActionDelete = "employee.delete"
)

type Event struct {
	ID         int64           `json:"id"`
	Action     string          `json:"action"`
	EmployeeID int64           `json:"employeeId"`
	RequestID  string          `json:"requestId"`
	IP         string          `json:"ip"`
	CreatedAt  time.Time       `json:"createdAt"`
	After      json.RawMessage `json:"after,omitempty"`
}

type Filter struct {
	Action     string
	EmployeeID int64
}

func (f Filter) matches(evt Event) bool {
	if f.Action != "" && evt.Action != f.Action {
		return false
	}
	if f.EmployeeID != 0 && evt.EmployeeID != f.EmployeeID {
		return false
	}
	return true
}

// Recorder stores one event per successful write.
type Recorder interface {
	Record(ctx context.Context, evt Event) error
}

// Log is a Recorder that can also be read back, newest first.
type Log interface {
	Recorder
	Count(ctx context.Context, filter Filter) (int, error)
	List(ctx context.Context, filter Filter, limit, offset int) ([]Event, error)
}

// NewEvent builds an event, encoding after as its JSON snapshot.
func NewEvent(action string, employeeID int64, requestID, ip string, after any) (Event, error) {
	evt := Event{Action: action, EmployeeID: employeeID, RequestID: requestID, IP: ip}
	if after != nil {
		payload, err := json.Marshal(after)
		if err != nil {
			return Event{}, err
		}
		evt.After = payload
	}
	return evt, nil
}
