package bootstrap

import (
	"context"

	"topphysics/database"
)

// EnsureIndexes puts unique indexes on the human-facing ids of assistants and
// centers. Run it after Seed so leftover documents can never block it.
func EnsureIndexes(ctx context.Context, db Database) error {
	for _, coll := range []string{Assistants, Centers} {
		if err := db.EnsureUniqueIndex(ctx, coll, "id"); err != nil {
			return &database.OperationError{Op: "createIndex", Collection: coll, Err: err}
		}
	}
	return nil
}
