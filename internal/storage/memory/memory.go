// Package memory provides an in-memory storage.Store used by tests and
// local development without Postgres. Semantics mirror the Postgres
// store, including sentinel errors and insertion-ordered listings.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luminashop/storefront-be/internal/models"
	"github.com/luminashop/storefront-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps users and products in maps guarded by a mutex.
type Store struct {
	mu           sync.RWMutex
	usersByEmail map[string]models.User
	products     map[string]models.Product
	productOrder []string
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{
		usersByEmail: make(map[string]models.User),
		products:     make(map[string]models.Product),
	}
}

// CreateUser inserts a user, enforcing email uniqueness.
func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(user.Email)
	if _, exists := s.usersByEmail[key]; exists {
		return models.User{}, storage.ErrAlreadyExists
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	s.usersByEmail[key] = user
	return user, nil
}

// FindByEmail fetches a user by email address.
func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByEmail[emailKey(email)]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// ListActiveProducts returns active products in insertion order.
func (s *Store) ListActiveProducts(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0)
	for _, id := range s.productOrder {
		if product, ok := s.products[id]; ok && product.IsActive {
			out = append(out, product)
		}
	}
	return out, nil
}

// GetProduct fetches a product regardless of its active flag.
func (s *Store) GetProduct(_ context.Context, id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return models.Product{}, storage.ErrNotFound
	}
	return product, nil
}

// CreateProduct inserts a product, generating its ID.
func (s *Store) CreateProduct(_ context.Context, product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = uuid.NewString()
	product.CreatedAt = time.Now().UTC()
	s.products[product.ID] = product
	s.productOrder = append(s.productOrder, product.ID)
	return product, nil
}

// UpdateProduct applies only the fields present in the patch.
func (s *Store) UpdateProduct(_ context.Context, id string, patch storage.ProductPatch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return models.Product{}, storage.ErrNotFound
	}

	if patch.Name.Set {
		product.Name = patch.Name.Value
	}
	if patch.Price.Set {
		product.Price = patch.Price.Value
	}
	if patch.Description.Set {
		product.Description = optionalString(patch.Description)
	}
	if patch.ImageURL.Set {
		product.ImageURL = optionalString(patch.ImageURL)
	}
	if patch.IsActive.Set {
		product.IsActive = patch.IsActive.Value
	}

	s.products[id] = product
	return product, nil
}

// DeleteProduct removes a product permanently.
func (s *Store) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.products, id)
	for i, existing := range s.productOrder {
		if existing == id {
			s.productOrder = append(s.productOrder[:i], s.productOrder[i+1:]...)
			break
		}
	}
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optionalString(field models.Optional[string]) *string {
	if field.Null {
		return nil
	}
	value := field.Value
	return &value
}
