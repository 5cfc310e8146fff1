package client

import (
	"context"
	"errors"
	"fmt"

	"staffdesk/internal/domain/employees"
	"staffdesk/internal/view"
)

// Notifier shows the outcome of a dashboard action to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Dashboard owns the cached employee list. Each action issues one request
// and only touches the cache when that request succeeds.
type Dashboard struct {
	api    *Client
	state  *view.State
	notify Notifier
}

func NewDashboard(api *Client, notify Notifier) *Dashboard {
	return &Dashboard{api: api, state: view.NewState(), notify: notify}
}

func (d *Dashboard) State() *view.State {
	return d.state
}

func (d *Dashboard) Refresh(ctx context.Context) error {
	list, err := d.api.List(ctx)
	if err != nil {
		return d.fail("Error fetching employees", err)
	}
	d.state.Load(list)
	return nil
}

func (d *Dashboard) Add(ctx context.Context, emp employees.Employee) (employees.Employee, error) {
	created, err := d.api.Create(ctx, emp)
	if err != nil {
		return employees.Employee{}, d.fail("Error adding employee", err)
	}
	d.state.ApplyCreate(created)
	d.notify.Success("Employee added successfully")
	return created, nil
}

func (d *Dashboard) Edit(ctx context.Context, id employees.ID, emp employees.Employee) error {
	body, err := d.api.Update(ctx, id, emp)
	if err != nil {
		return d.fail("Error updating employee", err)
	}
	if err := d.state.ApplyUpdate(id, body); err != nil {
		return d.fail("Error updating employee", err)
	}
	d.notify.Success("Employee updated successfully")
	return nil
}

func (d *Dashboard) Remove(ctx context.Context, id employees.ID) error {
	if err := d.api.Delete(ctx, id); err != nil {
		return d.fail("Error deleting employee", err)
	}
	d.state.ApplyDelete(id)
	d.notify.Success("Employee deleted successfully")
	return nil
}

func (d *Dashboard) fail(action string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		d.notify.Error(fmt.Sprintf("%s: %s", action, apiErr.Message))
	} else {
		d.notify.Error(action)
	}
	return fmt.Errorf("%s: %w", action, err)
}
