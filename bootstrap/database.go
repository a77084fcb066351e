package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Collection names used by the attendance app.
const (
	Students   = "students"
	Assistants = "assistants"
	History    = "history"
	Centers    = "centers"
)

// RequiredCollections is the set every seed run guarantees, in creation order.
var RequiredCollections = []string{Students, Assistants, History, Centers}

// Database is what a seed run needs from the target database.
// *database.Handle implements it over the MongoDB driver.
type Database interface {
	ListCollectionNames(ctx context.Context) ([]string, error)
	CreateCollection(ctx context.Context, name string) error
	DeleteAll(ctx context.Context, name string) (int64, error)
	InsertMany(ctx context.Context, name string, docs []any) (int, error)
	Documents(ctx context.Context, name string) ([]bson.Raw, error)
	EnsureUniqueIndex(ctx context.Context, collection, field string) error
}
