package repository

import (
	"context"

	"essaycoach/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordRepo handles MongoDB operations for grading records
type RecordRepo interface {
	Save(ctx context.Context, record *model.Record) error
	ListByOwner(ctx context.Context, ownerID string, limit int64) ([]*model.Record, error)
	Delete(ctx context.Context, ownerID, recordID string) (bool, error)
}

type recordRepo struct {
	collection *mongo.Collection
}

// NewRecordRepo creates a new record repository
func NewRecordRepo(db *mongo.Database) RecordRepo {
	return &recordRepo{
		collection: db.Collection("records"),
	}
}

// Save upserts by record ID, so a commit that failed downstream can be
// replayed without producing a duplicate.
func (r *recordRepo) Save(ctx context.Context, record *model.Record) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record, opts)
	return err
}

func (r *recordRepo) ListByOwner(ctx context.Context, ownerID string, limit int64) ([]*model.Record, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes one of the owner's records. Returns false when no record
// matched, including records owned by someone else.
func (r *recordRepo) Delete(ctx context.Context, ownerID, recordID string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": recordID, "ownerId": ownerID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
