package services

import (
	"context"
	"sync"
	"time"

	"order-up/internal/app/core"
	"order-up/internal/domain/dto"
	"order-up/internal/domain/models"
	"order-up/pkg/logger"
)

// OrdersService owns the orders collection. Orders are created exactly once
// and never mutated or deleted afterwards.
type OrdersService struct {
	mu        sync.Mutex
	store     core.Store
	publisher core.Publisher // nil when order events are disabled
	ids       idGenerator
	mylog     logger.Logger
}

func NewOrdersService(store core.Store, publisher core.Publisher, mylog logger.Logger) *OrdersService {
	return &OrdersService{store: store, publisher: publisher, mylog: mylog}
}

// Submit stores the payload as given. Items, total and user are trusted: the
// client computes the total and the store does not recheck it against the
// items. The server contributes only the id and the acceptance instant.
func (s *OrdersService) Submit(ctx context.Context, req dto.OrderRequest) (models.Order, error) {
	order, err := s.append(ctx, req)
	if err != nil {
		return models.Order{}, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
			// The order is already durable; the event stream just misses one.
			s.mylog.Action("order_event_publish_failed").Error(
				"Failed to publish order.created", err, "order_id", order.ID)
		}
	}
	return order, nil
}

func (s *OrdersService) append(ctx context.Context, req dto.OrderRequest) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	if err := s.store.Load(ctx, core.CollectionOrders, &orders); err != nil {
		s.mylog.Action("orders_load_failed").Error("Failed to load orders", err)
		return models.Order{}, err
	}

	order := models.Order{
		ID:               s.ids.next(),
		Items:            req.Items,
		Total:            req.Total,
		User:             req.User,
		Date:             req.Date,
		ServerReceivedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	orders = append(orders, order)

	if err := s.store.Save(ctx, core.CollectionOrders, orders); err != nil {
		s.mylog.Action("orders_save_failed").Error("Failed to save orders", err)
		return models.Order{}, err
	}

	s.mylog.Action("order_accepted").Info("Order accepted",
		"order_id", order.ID, "user", order.User, "total", order.Total, "items", len(order.Items))
	return order, nil
}
