package application

import (
	"context"

	"pizza-orders/internal/domain"
	"pizza-orders/internal/logger"
	"pizza-orders/internal/repository"
)

// EventPublisher pushes order lifecycle events to downstream consumers.
// Satisfied by kafka.Producer; nil disables publishing.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// OrdersService sits between the HTTP boundary and the repository. Drafts
// arrive validated; the service normalizes them before storage and emits
// an event after each successful mutation.
type OrdersService struct {
	repo   repository.OrderRepo
	events EventPublisher
}

func NewOrdersService(repo repository.OrderRepo, events EventPublisher) *OrdersService {
	return &OrdersService{
		repo:   repo,
		events: events,
	}
}

func (s *OrdersService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *OrdersService) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *OrdersService) CreateOrder(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	draft.Normalize()

	order, err := s.repo.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewOrderEvent(domain.EventOrderCreated, order.OrderID, order))
	return order, nil
}

func (s *OrdersService) UpdateOrder(ctx context.Context, id int, draft domain.OrderDraft) (*domain.Order, error) {
	draft.Normalize()

	order, err := s.repo.Update(ctx, id, draft)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.NewOrderEvent(domain.EventOrderUpdated, order.OrderID, order))
	return order, nil
}

func (s *OrdersService) DeleteOrder(ctx context.Context, id int) (domain.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return res, err
	}

	if res.Status == domain.DeleteStatusDeleted {
		s.publish(ctx, domain.NewOrderEvent(domain.EventOrderDeleted, id, nil))
	}
	return res, nil
}

// Menu is the static catalog; it never touches storage.
func (s *OrdersService) Menu() []domain.MenuItem {
	return domain.Menu()
}

// publish is best effort: the store already committed, a dead broker must
// not fail the request.
func (s *OrdersService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("order event publish failed", "event", event.Event, "orderId", event.OrderID, "err", err)
	}
}
