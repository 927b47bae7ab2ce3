package models

import (
	"time"

	"github.com/luminashop/storefront-be/internal/money"
)

// Product is a catalog entry. Only active products appear in the
// public listing; inactive ones remain editable through the admin API.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       money.Cents `json:"price"`
	Description *string     `json:"description"`
	ImageURL    *string     `json:"image_url"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
}
