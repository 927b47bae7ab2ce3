package storage

import (
	"context"
	"errors"

	"github.com/luminashop/storefront-be/internal/models"
	"github.com/luminashop/storefront-be/internal/money"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures credential persistence needed by the auth handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// ProductPatch carries presence-aware fields for a partial update.
// An unset field leaves the column untouched; a null Description or
// ImageURL clears the column.
type ProductPatch struct {
	Name        models.Optional[string]
	Price       models.Optional[money.Cents]
	Description models.Optional[string]
	ImageURL    models.Optional[string]
	IsActive    models.Optional[bool]
}

// Empty reports whether the patch changes nothing.
func (p ProductPatch) Empty() bool {
	return !p.Name.Set && !p.Price.Set && !p.Description.Set && !p.ImageURL.Set && !p.IsActive.Set
}

// ProductStore captures catalog persistence needed by the product handlers.
type ProductStore interface {
	ListActiveProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Store is the full persistence surface the server wires up.
type Store interface {
	UserStore
	ProductStore
}
