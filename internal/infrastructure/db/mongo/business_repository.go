package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/localbiz/directory-api/internal/core/domain"
	"github.com/localbiz/directory-api/internal/core/ports"
)

const businessesCollection = "businesses"

type BusinessRepository struct {
	col *mongo.Collection
}

func NewBusinessRepository(db *mongo.Database) *BusinessRepository {
	return &BusinessRepository{col: db.Collection(businessesCollection)}
}

// Create inserts a new business document. The id is generated here so the
// caller gets it back on the same struct.
func (r *BusinessRepository) Create(ctx context.Context, b *domain.Business) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if b.ID == "" {
		b.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, b)
	return err
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Business
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, options.Find().SetSort(stableSort()))
	if err != nil {
		return nil, err
	}
	return decodeBusinesses(ctx, cur)
}

// Search matches category and location by case-insensitive substring. The
// pattern is quoted so regex metacharacters in user input match literally.
func (r *BusinessRepository) Search(ctx context.Context, category, location string) ([]*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"category": primitive.Regex{Pattern: regexp.QuoteMeta(category), Options: "i"},
		"location": primitive.Regex{Pattern: regexp.QuoteMeta(location), Options: "i"},
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(stableSort()))
	if err != nil {
		return nil, err
	}
	return decodeBusinesses(ctx, cur)
}

// List returns one page plus the total count. The sort key (created_at asc,
// _id asc) is stable so repeated paginated reads neither skip nor duplicate
// records on a static dataset.
func (r *BusinessRepository) List(ctx context.Context, filter ports.ListBusinessesFilter) ([]*domain.Business, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(stableSort()).
		SetSkip(int64(filter.Page-1) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}

	items, err := decodeBusinesses(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update rewrites the mutable fields only; owner_id and created_at are never
// part of the update document.
func (r *BusinessRepository) Update(ctx context.Context, b *domain.Business) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        b.Name,
		"category":    b.Category,
		"location":    b.Location,
		"services":    b.Services,
		"pricing":     b.Pricing,
		"description": b.Description,
		"image":       b.ImageURL,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": b.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

func (r *BusinessRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing owner lookups, search, and the
// paginated list.
func (r *BusinessRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func stableSort() bson.D {
	return bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
}

func decodeBusinesses(ctx context.Context, cur *mongo.Cursor) ([]*domain.Business, error) {
	defer cur.Close(ctx)

	var out []*domain.Business
	for cur.Next(ctx) {
		var b domain.Business
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, cur.Err()
}
