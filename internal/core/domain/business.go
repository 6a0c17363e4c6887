package domain

import (
	"errors"
	"time"
)

var ErrBusinessNotFound = errors.New("business not found")
var ErrForbidden = errors.New("access forbidden")
var ErrMissingSearchParams = errors.New("category and location are required")
var ErrUploadFailed = errors.New("image upload failed")

// Business is the core aggregate: a directory listing owned by one user.
// OwnerID is immutable after creation; only the owner may mutate or delete
// the listing.
type Business struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	OwnerID     string    `json:"owner_id" bson:"owner_id"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Location    string    `json:"location" bson:"location"`
	Services    string    `json:"services" bson:"services"`
	Pricing     string    `json:"pricing" bson:"pricing"`
	Description string    `json:"description" bson:"description"`
	ImageURL    string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
