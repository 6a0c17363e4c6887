package domain

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking references its business one-directionally; the listing side is
// resolved with a lookup query, never a stored back-reference.
type Booking struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	BusinessID string        `json:"business_id" bson:"business_id"`
	UserID     string        `json:"user_id" bson:"user_id"`
	Service    string        `json:"service" bson:"service"`
	Date       time.Time     `json:"date" bson:"date"`
	Status     BookingStatus `json:"status" bson:"status"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
}
