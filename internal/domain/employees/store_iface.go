package employees

import "context"

// Repository is the persistence contract. Each call maps to one statement
// against the backing table.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	Insert(ctx context.Context, emp Employee) error
	Update(ctx context.Context, id ID, emp Employee) error
	Delete(ctx context.Context, id ID) error
}
