package ports

import (
	"context"

	"github.com/localbiz/directory-api/internal/core/domain"
)

// BookingRepository persists bookings. Bookings reference their business
// one-directionally; listing a business's bookings is a lookup query.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByBusiness(ctx context.Context, businessID string) ([]*domain.Booking, error)
}
