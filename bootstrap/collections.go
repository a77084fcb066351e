package bootstrap

import (
	"context"
	"slices"

	"topphysics/database"
)

type EnsureResult struct {
	Created  []string
	Existing []string
}

// EnsureCollections creates every name in required that is not already present.
// Existing collections and their documents are left alone, so running it again
// is a no-op.
func EnsureCollections(ctx context.Context, db Database, required []string, obs Observer) (EnsureResult, error) {
	obs = observerOrNop(obs)

	var res EnsureResult

	present, err := db.ListCollectionNames(ctx)
	if err != nil {
		return res, &database.OperationError{Op: "listCollections", Err: err}
	}

	for _, name := range required {
		if slices.Contains(present, name) {
			res.Existing = append(res.Existing, name)
			obs.CollectionChecked(name, false)
			continue
		}
		if err := db.CreateCollection(ctx, name); err != nil {
			return res, &database.OperationError{Op: "createCollection", Collection: name, Err: err}
		}
		present = append(present, name)
		res.Created = append(res.Created, name)
		obs.CollectionChecked(name, true)
	}

	return res, nil
}
