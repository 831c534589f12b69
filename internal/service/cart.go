package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/repository"
)

// CartService provides business logic for shopping cart operations.
// Every mutation validates the requested quantity against the product's
// current stock, and every operation that takes an item id also takes the
// caller's identity and checks ownership before touching the row.
type CartService interface {
	// AddItem puts a product in the customer's cart and returns the persisted item.
	AddItem(ctx context.Context, customerID, productID int64, quantity int32) (*domain.CartItem, error)

	// UpdateItemQuantity changes an item's quantity, re-validating against
	// the product's stock as it is now, not as it was when the item was added.
	UpdateItemQuantity(ctx context.Context, customerID, itemID int64, quantity int32) (*domain.CartItem, error)

	// RemoveItem deletes an item from the customer's cart.
	RemoveItem(ctx context.Context, customerID, itemID int64) error

	// ListItems returns the customer's cart with live product details.
	ListItems(ctx context.Context, customerID int64) ([]domain.CartItem, error)
}

type cartService struct {
	repo repository.Querier
}

// NewCartService creates a new CartService instance.
func NewCartService(repo repository.Querier) CartService {
	return &cartService{repo: repo}
}

// AddItem puts a product in the customer's cart.
func (s *cartService) AddItem(ctx context.Context, customerID, productID int64, quantity int32) (*domain.CartItem, error) {
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	item, err := domain.NewCartItem(customerID, product, quantity)
	if err != nil {
		return nil, err
	}

	row, err := s.repo.CreateCartItem(ctx, repository.CreateCartItemParams{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   item.Quantity.Value(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cart item: %w", err)
	}

	item.ID = row.ID
	return item, nil
}

// UpdateItemQuantity changes an item's quantity against current stock.
func (s *cartService) UpdateItemQuantity(ctx context.Context, customerID, itemID int64, quantity int32) (*domain.CartItem, error) {
	item, err := s.getOwnedItem(ctx, customerID, itemID)
	if err != nil {
		return nil, err
	}

	// Fresh product read; stock may have changed since the item was added.
	product, err := s.getProduct(ctx, item.Product.ID)
	if err != nil {
		return nil, err
	}

	if err := item.ChangeQuantity(product, quantity); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateCartItemQuantity(ctx, repository.UpdateCartItemQuantityParams{
		ID:       itemID,
		Quantity: item.Quantity.Value(),
	}); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return item, nil
}

// RemoveItem deletes an item from the customer's cart.
func (s *cartService) RemoveItem(ctx context.Context, customerID, itemID int64) error {
	if _, err := s.getOwnedItem(ctx, customerID, itemID); err != nil {
		return err
	}

	if err := s.repo.DeleteCartItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// ListItems returns the customer's cart with live product details.
func (s *cartService) ListItems(ctx context.Context, customerID int64) ([]domain.CartItem, error) {
	rows, err := s.repo.ListCartItems(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	items := make([]domain.CartItem, 0, len(rows))
	for _, row := range rows {
		item, err := domain.RestoreCartItem(row.ID, row.CustomerID, domain.Product{
			ID:         row.ProductID,
			Name:       row.Name,
			PriceCents: row.PriceCents,
			Stock:      row.Stock,
			ImageURL:   row.ImageURL,
		}, row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("corrupt cart item %d: %w", row.ID, err)
		}
		items = append(items, *item)
	}
	return items, nil
}

// getOwnedItem loads a cart item and rehydrates it together with its product,
// failing if the item is missing or owned by another customer.
func (s *cartService) getOwnedItem(ctx context.Context, customerID, itemID int64) (*domain.CartItem, error) {
	row, err := s.repo.GetCartItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	if row.CustomerID != customerID {
		return nil, domain.ErrCartItemForbidden
	}

	product, err := s.getProduct(ctx, row.ProductID)
	if err != nil {
		return nil, err
	}

	return domain.RestoreCartItem(row.ID, row.CustomerID, product, row.Quantity)
}

func (s *cartService) getProduct(ctx context.Context, productID int64) (domain.Product, error) {
	row, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return domain.Product{
		ID:         row.ID,
		Name:       row.Name,
		PriceCents: row.PriceCents,
		Stock:      row.Stock,
		ImageURL:   row.ImageURL,
	}, nil
}
