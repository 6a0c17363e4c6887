package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/localbiz/directory-api/internal/core/domain"
	"github.com/localbiz/directory-api/internal/core/ports"
)

type stubBookingRepo struct {
	byID   map[string]*domain.Booking
	nextID int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.nextID++
	b.ID = fmt.Sprintf("booking_%d", r.nextID)
	clone := *b
	r.byID[b.ID] = &clone
	return nil
}

func (r *stubBookingRepo) FindByBusiness(_ context.Context, businessID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if b.BusinessID == businessID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func seedBusiness(t *testing.T, repo *stubBusinessRepo, ownerID string) *domain.Business {
	t.Helper()
	b := &domain.Business{
		OwnerID:     ownerID,
		Name:        "Sunrise Yoga",
		Category:    "Yoga",
		Location:    "Pune",
		Services:    "Morning sessions",
		Pricing:     "500/session",
		Description: "Studio",
		CreatedAt:   time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("seed business: %v", err)
	}
	return b
}

func TestBookingService_Create_Success(t *testing.T) {
	businesses := newStubBusinessRepo()
	bookings := newStubBookingRepo()
	svc := NewBookingService(bookings, businesses, zerolog.Nop())

	biz := seedBusiness(t, businesses, "owner_a")

	booking, err := svc.Create(context.Background(), "user_1", ports.CreateBookingInput{
		BusinessID: biz.ID,
		Service:    "Morning session",
		Date:       time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.Status != domain.BookingPending {
		t.Fatalf("expected pending status, got %s", booking.Status)
	}
	if booking.UserID != "user_1" || booking.BusinessID != biz.ID {
		t.Fatalf("unexpected booking: %+v", booking)
	}
}

func TestBookingService_Create_UnknownBusiness(t *testing.T) {
	svc := NewBookingService(newStubBookingRepo(), newStubBusinessRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), "user_1", ports.CreateBookingInput{
		BusinessID: "missing",
		Service:    "Session",
		Date:       time.Now(),
	})
	if err != domain.ErrBusinessNotFound {
		t.Fatalf("expected ErrBusinessNotFound, got %v", err)
	}
}

func TestBookingService_ListForBusiness_OwnerOnly(t *testing.T) {
	businesses := newStubBusinessRepo()
	bookings := newStubBookingRepo()
	svc := NewBookingService(bookings, businesses, zerolog.Nop())

	biz := seedBusiness(t, businesses, "owner_a")

	if _, err := svc.Create(context.Background(), "user_1", ports.CreateBookingInput{
		BusinessID: biz.ID,
		Service:    "Session",
		Date:       time.Now().Add(24 * time.Hour),
	}); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := svc.ListForBusiness(context.Background(), biz.ID, "owner_b"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	list, err := svc.ListForBusiness(context.Background(), biz.ID, "owner_a")
	if err != nil {
		t.Fatalf("ListForBusiness failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(list))
	}
}
