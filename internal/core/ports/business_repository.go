package ports

import (
	"context"

	"github.com/localbiz/directory-api/internal/core/domain"
)

// ListBusinessesFilter carries pagination parameters for listing businesses.
type ListBusinessesFilter struct {
	Page  int // 1-based
	Limit int // rows per page
}

// BusinessRepository defines persistence operations for business listings.
type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business) error
	FindByID(ctx context.Context, id string) (*domain.Business, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Business, error)
	// Search matches category and location by case-insensitive substring
	// containment on both fields.
	Search(ctx context.Context, category, location string) ([]*domain.Business, error)
	// List returns a page of businesses in stable order (created_at asc,
	// id asc) and the total count.
	List(ctx context.Context, filter ListBusinessesFilter) ([]*domain.Business, int64, error)
	// Update persists the mutable fields of b. The owner reference is never
	// written.
	Update(ctx context.Context, b *domain.Business) error
	Delete(ctx context.Context, id string) error
}
