package repository

import (
	"context"
	"errors"

	"pizza-orders/internal/domain"
)

// ErrOrderNotFound is returned by Get and Update when no stored order has
// the requested id. Delete never returns it: an absent id is reported in
// the DeleteResult status instead.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepo is the storage contract shared by the file and the Postgres
// backends. Drafts arrive already validated; the repository only assigns
// ids and persists.
type OrderRepo interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	Create(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error)
	Update(ctx context.Context, id int, draft domain.OrderDraft) (*domain.Order, error)
	Delete(ctx context.Context, id int) (domain.DeleteResult, error)
}
