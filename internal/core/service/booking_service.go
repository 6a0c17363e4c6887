package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/localbiz/directory-api/internal/core/domain"
	"github.com/localbiz/directory-api/internal/core/ports"
)

// BookingService implements booking creation and owner-scoped lookup.
type BookingService struct {
	bookings   ports.BookingRepository
	businesses ports.BusinessRepository
	log        zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, businesses ports.BusinessRepository, log zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, businesses: businesses, log: log}
}

func (s *BookingService) Create(ctx context.Context, userID string, input ports.CreateBookingInput) (*domain.Booking, error) {
	if userID == "" {
		return nil, domain.ErrForbidden
	}
	if input.BusinessID == "" || input.Service == "" || input.Date.IsZero() {
		return nil, domain.ErrMissingFields
	}

	// The business must exist before a booking can reference it.
	if _, err := s.businesses.FindByID(ctx, input.BusinessID); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		BusinessID: input.BusinessID,
		UserID:     userID,
		Service:    input.Service,
		Date:       input.Date,
		Status:     domain.BookingPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		s.log.Error().Err(err).Str("business_id", input.BusinessID).Msg("failed to create booking")
		return nil, err
	}

	s.log.Info().Str("booking_id", b.ID).Str("business_id", b.BusinessID).Msg("booking created")
	return b, nil
}

// ListForBusiness returns the bookings made against a listing. Only the
// listing's owner may read them.
func (s *BookingService) ListForBusiness(ctx context.Context, businessID, requesterID string) ([]*domain.Booking, error) {
	business, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}
	return s.bookings.FindByBusiness(ctx, businessID)
}
