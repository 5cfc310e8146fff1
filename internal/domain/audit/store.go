package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Record(ctx context.Context, evt Event) error {
	var after []byte
	if len(evt.After) > 0 {
		after = evt.After
	}
	_, err := s.DB.Exec(ctx, `
    INSERT INTO audit_events (action, employee_id, request_id, ip, after_json)
    VALUES ($1,$2,$3,$4,$5)
  `, evt.Action, evt.EmployeeID, evt.RequestID, evt.IP, after)
	return err
}

func (s *Store) Count(ctx context.Context, filter Filter) (int, error) {
	query, args := buildBaseQuery("SELECT COUNT(1)", filter)
	var total int
	if err := s.DB.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) List(ctx context.Context, filter Filter, limit, offset int) ([]Event, error) {
	query, args := buildBaseQuery("SELECT id, action, employee_id, request_id, ip, created_at, after_json", filter)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Event, 0)
	for rows.Next() {
		var evt Event
		var after []byte
		if err := rows.Scan(&evt.ID, &evt.Action, &evt.EmployeeID, &evt.RequestID, &evt.IP, &evt.CreatedAt, &after); err != nil {
			return nil, err
		}
		evt.After = after
		out = append(out, evt)
	}
	return out, rows.Err()
}

func buildBaseQuery(prefix string, filter Filter) (string, []any) {
	query := prefix + " FROM audit_events WHERE 1=1"
	var args []any
	if filter.Action != "" {
		args = append(args, filter.Action)
		query += fmt.Sprintf(" AND action = $%d", len(args))
	}
	if filter.EmployeeID != 0 {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	return query, args
}
