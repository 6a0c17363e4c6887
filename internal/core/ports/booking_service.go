package ports

import (
	"context"
	"time"

	"github.com/localbiz/directory-api/internal/core/domain"
)

// CreateBookingInput carries the data needed to book a business's service.
type CreateBookingInput struct {
	BusinessID string
	Service    string
	Date       time.Time
}

// BookingService defines booking use cases. Only the business owner may list
// the bookings made against their listing.
type BookingService interface {
	Create(ctx context.Context, userID string, input CreateBookingInput) (*domain.Booking, error)
	ListForBusiness(ctx context.Context, businessID, requesterID string) ([]*domain.Booking, error)
}
