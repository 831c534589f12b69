package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/repository"
)

// OrderService provides business logic for checkout and order retrieval.
type OrderService interface {
	// PlaceOrder converts the referenced cart items into an order. The whole
	// conversion runs in one transaction: lines are snapshotted from a single
	// consistent read and the cart items are consumed, or nothing changes.
	// Calling again with the same ids fails, because the items are gone.
	PlaceOrder(ctx context.Context, customerID int64, cartItemIDs []int64) (int64, error)

	// GetOrder returns one of the customer's orders with its full line set.
	GetOrder(ctx context.Context, customerID, orderID int64) (*domain.Order, error)

	// ListOrders returns all of the customer's orders in creation order.
	ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error)
}

type orderService struct {
	store repository.Store
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(store repository.Store) OrderService {
	return &orderService{store: store}
}

// PlaceOrder converts the referenced cart items into an order.
func (s *orderService) PlaceOrder(ctx context.Context, customerID int64, cartItemIDs []int64) (int64, error) {
	if len(cartItemIDs) == 0 {
		return 0, domain.ErrOrderEmpty
	}

	var orderID int64
	err := s.store.ExecTx(ctx, func(q repository.Querier) error {
		items := make([]*domain.CartItem, 0, len(cartItemIDs))
		for _, itemID := range cartItemIDs {
			row, err := q.GetCartItem(ctx, itemID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domain.ErrCartItemNotFound
				}
				return fmt.Errorf("failed to get cart item %d: %w", itemID, err)
			}
			if row.CustomerID != customerID {
				return domain.ErrOrderForbidden
			}

			product, err := q.GetProduct(ctx, row.ProductID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domain.ErrProductNotFound
				}
				return fmt.Errorf("failed to get product %d: %w", row.ProductID, err)
			}

			// Stock is deliberately not re-checked here: it gates cart
			// mutations only, not order fulfillment.
			item, err := domain.RestoreCartItem(row.ID, row.CustomerID, domain.Product{
				ID:         product.ID,
				Name:       product.Name,
				PriceCents: product.PriceCents,
				Stock:      product.Stock,
				ImageURL:   product.ImageURL,
			}, row.Quantity)
			if err != nil {
				return fmt.Errorf("corrupt cart item %d: %w", row.ID, err)
			}
			items = append(items, item)
		}

		order, err := domain.NewOrder(customerID, items)
		if err != nil {
			return err
		}

		created, err := q.CreateOrder(ctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, line := range order.Lines {
			if _, err := q.CreateOrderLine(ctx, repository.CreateOrderLineParams{
				OrderID:    created.ID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				PriceCents: line.PriceCents,
				Name:       line.Name,
				ImageURL:   line.ImageURL,
			}); err != nil {
				return fmt.Errorf("failed to create order line: %w", err)
			}
		}

		// Consume the cart items that became the order.
		for _, itemID := range cartItemIDs {
			if err := q.DeleteCartItem(ctx, itemID); err != nil {
				return fmt.Errorf("failed to delete cart item %d: %w", itemID, err)
			}
		}

		orderID = created.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// GetOrder returns one of the customer's orders with its full line set.
// An order owned by another customer is reported as not found, never as
// someone else's data.
func (s *orderService) GetOrder(ctx context.Context, customerID, orderID int64) (*domain.Order, error) {
	row, err := s.store.GetOrder(ctx, repository.GetOrderParams{
		ID:         orderID,
		CustomerID: customerID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return s.loadOrder(ctx, row)
}

// ListOrders returns all of the customer's orders in creation order.
func (s *orderService) ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	rows, err := s.store.ListOrders(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := s.loadOrder(ctx, row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (s *orderService) loadOrder(ctx context.Context, row repository.Order) (*domain.Order, error) {
	lineRows, err := s.store.ListOrderLines(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order lines for order %d: %w", row.ID, err)
	}

	lines := make([]domain.OrderLine, 0, len(lineRows))
	for _, l := range lineRows {
		lines = append(lines, domain.OrderLine{
			ID:         l.ID,
			ProductID:  l.ProductID,
			Quantity:   l.Quantity,
			PriceCents: l.PriceCents,
			Name:       l.Name,
			ImageURL:   l.ImageURL,
		})
	}

	return &domain.Order{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Lines:      lines,
		CreatedAt:  row.CreatedAt,
	}, nil
}
