package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Handle exposes the handful of *mongo.Database calls the bootstrap needs.
type Handle struct {
	db *mongo.Database
}

func NewHandle(db *mongo.Database) *Handle {
	return &Handle{db: db}
}

func (h *Handle) ListCollectionNames(ctx context.Context) ([]string, error) {
	return h.db.ListCollectionNames(ctx, bson.D{})
}

func (h *Handle) CreateCollection(ctx context.Context, name string) error {
	return h.db.CreateCollection(ctx, name)
}

func (h *Handle) DeleteAll(ctx context.Context, name string) (int64, error) {
	res, err := h.db.Collection(name).DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (h *Handle) InsertMany(ctx context.Context, name string, docs []any) (int, error) {
	res, err := h.db.Collection(name).InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func (h *Handle) Documents(ctx context.Context, name string) ([]bson.Raw, error) {
	cursor, err := h.db.Collection(name).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.Raw
	for cursor.Next(ctx) {
		// Current is only valid until the next call to Next.
		docs = append(docs, append(bson.Raw(nil), cursor.Current...))
	}
	return docs, cursor.Err()
}

func (h *Handle) EnsureUniqueIndex(ctx context.Context, collection, field string) error {
	_, err := h.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_" + field),
	})
	return err
}
