package repository

import "context"

const createProduct = `
INSERT INTO product (name, price_cents, stock, image_url)
VALUES ($1, $2, $3, $4)
RETURNING id, name, price_cents, stock, image_url, created_at
`

// CreateProductParams holds the arguments for CreateProduct.
type CreateProductParams struct {
	Name       string
	PriceCents int64
	Stock      int32
	ImageURL   string
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, createProduct, arg.Name, arg.PriceCents, arg.Stock, arg.ImageURL)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Stock, &p.ImageURL, &p.CreatedAt)
	return p, err
}

const getProduct = `
SELECT id, name, price_cents, stock, image_url, created_at
FROM product
WHERE id = $1
`

func (q *Queries) GetProduct(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRow(ctx, getProduct, id)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Stock, &p.ImageURL, &p.CreatedAt)
	return p, err
}

const listProducts = `
SELECT id, name, price_cents, stock, image_url, created_at
FROM product
ORDER BY id
`

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Stock, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

const deleteProduct = `
DELETE FROM product
WHERE id = $1
`

func (q *Queries) DeleteProduct(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteProduct, id)
	return err
}
