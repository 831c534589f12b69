package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/repository"
)

// CreateProductParams are the inputs for ProductService.Create.
type CreateProductParams struct {
	Name       string
	PriceCents int64
	Stock      int32
	ImageURL   string
}

// ProductService is the catalog read/write side the cart depends on.
type ProductService interface {
	Create(ctx context.Context, params CreateProductParams) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo repository.Querier
}

// NewProductService creates a new ProductService instance.
func NewProductService(repo repository.Querier) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, params CreateProductParams) (*domain.Product, error) {
	if params.Name == "" {
		return nil, domain.Invalid("product.create", "name is required")
	}
	if params.PriceCents < 0 {
		return nil, domain.Invalid("product.create", "price must not be negative")
	}
	if params.Stock < 0 {
		return nil, domain.Invalid("product.create", "stock must not be negative")
	}

	row, err := s.repo.CreateProduct(ctx, repository.CreateProductParams{
		Name:       params.Name,
		PriceCents: params.PriceCents,
		Stock:      params.Stock,
		ImageURL:   params.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return mapRepoProduct(row), nil
}

func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	row, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return mapRepoProduct(row), nil
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, *mapRepoProduct(row))
	}
	return products, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func mapRepoProduct(row repository.Product) *domain.Product {
	return &domain.Product{
		ID:         row.ID,
		Name:       row.Name,
		PriceCents: row.PriceCents,
		Stock:      row.Stock,
		ImageURL:   row.ImageURL,
	}
}
