package ports

import (
	"context"

	"github.com/localbiz/directory-api/internal/core/domain"
)

// BusinessInput carries the writable attributes of a listing. ImagePath is
// the local path of an uploaded file; empty means no image was supplied.
type BusinessInput struct {
	Name        string
	Category    string
	Location    string
	Services    string
	Pricing     string
	Description string
	ImagePath   string
}

// ListBusinessesInput carries the parameters for the paginated public list.
type ListBusinessesInput struct {
	Page  int
	Limit int
}

// ListBusinessesResult is returned by List.
type ListBusinessesResult struct {
	Items      []*domain.Business
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BusinessService defines use-case operations for business listings.
// Mutations require the requester identity resolved by the auth middleware;
// ownership is enforced here, before any write.
type BusinessService interface {
	Create(ctx context.Context, ownerID string, input BusinessInput) (*domain.Business, error)
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*domain.Business, error)
	Update(ctx context.Context, id, requesterID string, input BusinessInput) (*domain.Business, error)
	Delete(ctx context.Context, id, requesterID string) error
	Search(ctx context.Context, category, location string) ([]*domain.Business, error)
	List(ctx context.Context, input ListBusinessesInput) (*ListBusinessesResult, error)
}
