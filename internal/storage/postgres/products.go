package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/luminashop/storefront-be/internal/models"
	"github.com/luminashop/storefront-be/internal/money"
	"github.com/luminashop/storefront-be/internal/storage"
)

const productColumns = "id, name, price::text, description, image_url, is_active, created_at"

// ListActiveProducts returns every product with is_active = true. An
// empty catalog yields an empty slice, not an error.
func (s *Store) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE is_active
		ORDER BY created_at, id;
	`, productColumns)
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct fetches a single product regardless of its active flag.
func (s *Store) GetProduct(ctx context.Context, id string) (models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id::text = $1;`, productColumns)
	return scanProduct(s.pool.QueryRow(ctx, query, id))
}

// CreateProduct inserts a new product row, generating its ID.
func (s *Store) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	query := fmt.Sprintf(`
		INSERT INTO products (id, name, price, description, image_url, is_active)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)
		RETURNING %s;
	`, productColumns)
	row := s.pool.QueryRow(ctx, query,
		uuid.NewString(), product.Name, product.Price.String(),
		product.Description, product.ImageURL, product.IsActive)
	created, err := scanProduct(row)
	if err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	return created, nil
}

// UpdateProduct applies only the fields present in the patch. A patch
// with no fields returns the current record unchanged.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch storage.ProductPatch) (models.Product, error) {
	if patch.Empty() {
		return s.GetProduct(ctx, id)
	}

	var (
		assignments []string
		args        []any
	)
	appendArg := func(column, cast string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d%s", column, len(args), cast))
	}

	if patch.Name.Set {
		appendArg("name", "", patch.Name.Value)
	}
	if patch.Price.Set {
		appendArg("price", "::numeric", patch.Price.Value.String())
	}
	if patch.Description.Set {
		appendArg("description", "", nullable(patch.Description))
	}
	if patch.ImageURL.Set {
		appendArg("image_url", "", nullable(patch.ImageURL))
	}
	if patch.IsActive.Set {
		appendArg("is_active", "", patch.IsActive.Value)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE products SET %s
		WHERE id::text = $%d
		RETURNING %s;
	`, strings.Join(assignments, ", "), len(args), productColumns)

	updated, err := scanProduct(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Product{}, storage.ErrNotFound
		}
		return models.Product{}, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// DeleteProduct removes a product row permanently.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id::text = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func nullable(field models.Optional[string]) any {
	if field.Null {
		return nil
	}
	return field.Value
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var (
		product  models.Product
		priceStr string
	)
	err := row.Scan(&product.ID, &product.Name, &priceStr,
		&product.Description, &product.ImageURL, &product.IsActive, &product.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Product{}, storage.ErrNotFound
		}
		return models.Product{}, err
	}
	price, err := money.Parse(priceStr)
	if err != nil {
		return models.Product{}, fmt.Errorf("scan price %q: %w", priceStr, err)
	}
	product.Price = price
	return product, nil
}
