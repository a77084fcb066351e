package bootstrap

import (
	"context"
	"fmt"
)

type Options struct {
	Indexes bool
	Verify  bool
}

type Result struct {
	Ensure EnsureResult
	Seed   SeedSummary
}

// Run performs one seed run against db: ensure the collections, seed them,
// then optionally add the id indexes and read everything back.
func Run(ctx context.Context, db Database, seeder *Seeder, opts Options) (Result, error) {
	var res Result
	var err error

	res.Ensure, err = EnsureCollections(ctx, db, RequiredCollections, seeder.Observer)
	if err != nil {
		return res, fmt.Errorf("ensure collections: %w", err)
	}

	res.Seed, err = seeder.Seed(ctx, db)
	if err != nil {
		return res, fmt.Errorf("seed: %w", err)
	}

	if opts.Indexes {
		if err := EnsureIndexes(ctx, db); err != nil {
			return res, fmt.Errorf("ensure indexes: %w", err)
		}
	}

	if opts.Verify {
		if err := seeder.Verify(ctx, db); err != nil {
			return res, fmt.Errorf("verify: %w", err)
		}
	}

	return res, nil
}
