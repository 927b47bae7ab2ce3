package dto

import (
	"github.com/luminashop/storefront-be/internal/models"
	"github.com/luminashop/storefront-be/internal/money"
)

// CatalogItem is the public listing shape: active products only, no
// is_active or created_at.
type CatalogItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       money.Cents `json:"price"`
	Description *string     `json:"description"`
	ImageURL    *string     `json:"image_url"`
}

// CatalogItemFromProduct projects a product onto the listing shape.
func CatalogItemFromProduct(p models.Product) CatalogItem {
	return CatalogItem{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

type CreateProductRequest struct {
	Name        string       `json:"name"`
	Price       *money.Cents `json:"price"`
	Description *string      `json:"description"`
	ImageURL    *string      `json:"image_url"`
}

// UpdateProductRequest carries presence-aware fields: absent fields are
// left untouched, explicit nulls clear nullable columns.
type UpdateProductRequest struct {
	ID          string                       `json:"id"`
	Name        models.Optional[string]      `json:"name"`
	Price       models.Optional[money.Cents] `json:"price"`
	Description models.Optional[string]      `json:"description"`
	ImageURL    models.Optional[string]      `json:"image_url"`
	IsActive    models.Optional[bool]        `json:"is_active"`
}
