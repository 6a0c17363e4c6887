package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/localbiz/directory-api/internal/api/metrics"
	"github.com/localbiz/directory-api/internal/core/domain"
	"github.com/localbiz/directory-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// BusinessCache abstracts the read cache for single-listing lookups (Redis).
// Cache failures are never fatal; the store remains the source of truth.
type BusinessCache interface {
	Get(ctx context.Context, id string) (*domain.Business, error)
	Set(ctx context.Context, b *domain.Business) error
	Invalidate(ctx context.Context, id string) error
}

// BusinessService implements listing CRUD with ownership enforcement.
type BusinessService struct {
	repo     ports.BusinessRepository
	uploader ports.MediaUploader
	cache    BusinessCache
	log      zerolog.Logger
}

func NewBusinessService(repo ports.BusinessRepository, uploader ports.MediaUploader, cache BusinessCache, log zerolog.Logger) *BusinessService {
	return &BusinessService{repo: repo, uploader: uploader, cache: cache, log: log}
}

// Create validates, uploads the optional image, and persists the listing.
// The upload happens before the write: on upload failure nothing is stored.
func (s *BusinessService) Create(ctx context.Context, ownerID string, input ports.BusinessInput) (*domain.Business, error) {
	if ownerID == "" {
		return nil, domain.ErrForbidden
	}
	if err := validateBusinessInput(input); err != nil {
		return nil, err
	}

	imageURL, err := s.uploadIfPresent(ctx, input.ImagePath)
	if err != nil {
		return nil, err
	}

	b := &domain.Business{
		OwnerID:     ownerID,
		Name:        input.Name,
		Category:    input.Category,
		Location:    input.Location,
		Services:    input.Services,
		Pricing:     input.Pricing,
		Description: input.Description,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create business")
		return nil, err
	}

	metrics.BusinessesCreatedTotal.WithLabelValues(b.Category).Inc()
	s.log.Info().Str("business_id", b.ID).Str("owner_id", ownerID).Msg("business created")
	return b, nil
}

// GetByID is public: no ownership check. Reads go through the cache.
func (s *BusinessService) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	if cached, err := s.cache.Get(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("business_id", id).Msg("cache read failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, b); err != nil {
		s.log.Warn().Err(err).Str("business_id", id).Msg("cache write failed")
	}
	return b, nil
}

func (s *BusinessService) GetByOwner(ctx context.Context, ownerID string) ([]*domain.Business, error) {
	if ownerID == "" {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByOwner(ctx, ownerID)
}

// Update replaces the mutable fields of a listing. Only the owner may update;
// when no new image is supplied the stored image URL is retained.
func (s *BusinessService) Update(ctx context.Context, id, requesterID string, input ports.BusinessInput) (*domain.Business, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}
	if err := validateBusinessInput(input); err != nil {
		return nil, err
	}

	imageURL := existing.ImageURL
	if input.ImagePath != "" {
		imageURL, err = s.uploadIfPresent(ctx, input.ImagePath)
		if err != nil {
			return nil, err
		}
	}

	updated := &domain.Business{
		ID:          existing.ID,
		OwnerID:     existing.OwnerID,
		Name:        input.Name,
		Category:    input.Category,
		Location:    input.Location,
		Services:    input.Services,
		Pricing:     input.Pricing,
		Description: input.Description,
		ImageURL:    imageURL,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		s.log.Error().Err(err).Str("business_id", id).Msg("failed to update business")
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("business_id", id).Msg("cache invalidation failed")
	}
	return updated, nil
}

func (s *BusinessService) Delete(ctx context.Context, id, requesterID string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != requesterID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("business_id", id).Msg("cache invalidation failed")
	}
	s.log.Info().Str("business_id", id).Msg("business deleted")
	return nil
}

// Search requires both parameters and matches each by case-insensitive
// substring containment. An empty result set is not an error.
func (s *BusinessService) Search(ctx context.Context, category, location string) ([]*domain.Business, error) {
	if category == "" || location == "" {
		return nil, domain.ErrMissingSearchParams
	}
	metrics.SearchesTotal.Inc()
	return s.repo.Search(ctx, category, location)
}

// List returns one page in stable order (created_at asc, id asc) so repeated
// reads neither skip nor duplicate records on a static dataset.
func (s *BusinessService) List(ctx context.Context, input ports.ListBusinessesInput) (*ports.ListBusinessesResult, error) {
	page := input.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListBusinessesFilter{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListBusinessesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *BusinessService) uploadIfPresent(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	url, err := s.uploader.Upload(ctx, path)
	if err != nil {
		metrics.MediaUploadsTotal.WithLabelValues("failure").Inc()
		s.log.Error().Err(err).Str("path", path).Msg("media upload failed")
		return "", err
	}
	metrics.MediaUploadsTotal.WithLabelValues("success").Inc()
	return url, nil
}

func validateBusinessInput(in ports.BusinessInput) error {
	if in.Name == "" || in.Category == "" || in.Location == "" ||
		in.Services == "" || in.Pricing == "" || in.Description == "" {
		return domain.ErrMissingFields
	}
	return nil
}
