package handler

import (
	"github.com/localbiz/directory-api/internal/core/domain"
	"github.com/localbiz/directory-api/internal/core/ports"
)

func toBusinessInput(f businessForm, imagePath string) ports.BusinessInput {
	return ports.BusinessInput{
		Name:        f.Name,
		Category:    f.Category,
		Location:    f.Location,
		Services:    f.Services,
		Pricing:     f.Pricing,
		Description: f.Description,
		ImagePath:   imagePath,
	}
}

func toBusinessResponse(b *domain.Business) businessResponse {
	return businessResponse{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Category:    b.Category,
		Location:    b.Location,
		Services:    b.Services,
		Pricing:     b.Pricing,
		Description: b.Description,
		Image:       b.ImageURL,
		CreatedAt:   b.CreatedAt.UTC(),
	}
}

func toBusinessListResponse(items []*domain.Business) businessListResponse {
	out := make([]businessResponse, len(items))
	for i, b := range items {
		out[i] = toBusinessResponse(b)
	}
	return businessListResponse{Businesses: out}
}

func toPagedResponse(r *ports.ListBusinessesResult) pagedBusinessesResponse {
	items := make([]businessResponse, len(r.Items))
	for i, b := range r.Items {
		items[i] = toBusinessResponse(b)
	}
	return pagedBusinessesResponse{
		Businesses: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		BusinessID: b.BusinessID,
		UserID:     b.UserID,
		Service:    b.Service,
		Date:       b.Date.UTC(),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.UTC(),
	}
}

func toBookingListResponse(items []*domain.Booking) bookingListResponse {
	out := make([]bookingResponse, len(items))
	for i, b := range items {
		out[i] = toBookingResponse(b)
	}
	return bookingListResponse{Bookings: out}
}
