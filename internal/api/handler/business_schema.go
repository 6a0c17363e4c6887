package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// businessForm holds the multipart form fields of create/update requests.
// The optional image file arrives as a separate form part, not a field here.
type businessForm struct {
	Name        string `form:"name"        validate:"required"`
	Category    string `form:"category"    validate:"required"`
	Location    string `form:"location"    validate:"required"`
	Services    string `form:"services"    validate:"required"`
	Pricing     string `form:"pricing"     validate:"required"`
	Description string `form:"description" validate:"required"`
}

// Response-only types owned by the transport layer, kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type businessResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Services    string    `json:"services"`
	Pricing     string    `json:"pricing"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type businessListResponse struct {
	Businesses []businessResponse `json:"businesses"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type pagedBusinessesResponse struct {
	Businesses []businessResponse `json:"businesses"`
	Pagination paginationResponse `json:"pagination"`
}

type createBookingRequest struct {
	Service string    `json:"service" validate:"required"`
	Date    time.Time `json:"date"    validate:"required"`
}

type bookingResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	UserID     string    `json:"user_id"`
	Service    string    `json:"service"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type bookingListResponse struct {
	Bookings []bookingResponse `json:"bookings"`
}
