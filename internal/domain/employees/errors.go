package employees

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("employee not found")
	ErrConflict = errors.New("employee id or email already exists")
)

type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError collects every rejected field of a payload.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "invalid employee"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+" "+issue.Reason)
	}
	return "invalid employee: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, reason string) {
	e.Issues = append(e.Issues, FieldIssue{Field: field, Reason: reason})
}

func (e *ValidationError) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.add(field, "is required")
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}
