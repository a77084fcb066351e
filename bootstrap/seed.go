package bootstrap

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"topphysics/database"
	"topphysics/internal/credentials"
	"topphysics/internal/models"
)

type SeedSummary struct {
	AssistantsCreated int
	StudentsCreated   int
	CentersCreated    int
	HistoryCleared    bool
	// Deleted holds how many documents each cleared collection had.
	Deleted map[string]int64
}

// Seeder wipes the transient collections and provisions the fixed
// administrators and centers. Use NewSeeder for the production fixtures.
type Seeder struct {
	Assistants []AssistantSeed
	Centers    []CenterSeed
	Cost       int
	Now        func() time.Time
	Observer   Observer
}

func NewSeeder(obs Observer) *Seeder {
	return &Seeder{
		Assistants: DefaultAssistants,
		Centers:    DefaultCenters,
		Cost:       credentials.DefaultCost,
		Now:        time.Now,
		Observer:   obs,
	}
}

// Seed expects every collection in RequiredCollections to exist. It stops at
// the first failure and does not undo earlier steps; rerun it to converge.
func (s *Seeder) Seed(ctx context.Context, db Database) (SeedSummary, error) {
	obs := observerOrNop(s.Observer)
	summary := SeedSummary{Deleted: make(map[string]int64, len(RequiredCollections))}

	if err := validateFixtures(s.Assistants, s.Centers); err != nil {
		return summary, err
	}

	for _, name := range RequiredCollections {
		n, err := db.DeleteAll(ctx, name)
		if err != nil {
			return summary, &database.OperationError{Op: "deleteMany", Collection: name, Err: err}
		}
		summary.Deleted[name] = n
		obs.CollectionCleared(name, n)
	}
	summary.HistoryCleared = true

	assistants, err := s.buildAssistants(ctx)
	if err != nil {
		return summary, err
	}
	n, err := insert(ctx, db, Assistants, toDocs(assistants))
	if err != nil {
		return summary, err
	}
	summary.AssistantsCreated = n
	obs.AssistantsCreated(n)

	n, err = insert(ctx, db, Centers, toDocs(s.buildCenters()))
	if err != nil {
		return summary, err
	}
	summary.CentersCreated = n
	obs.CentersCreated(n)

	return summary, nil
}

// buildAssistants hashes every password concurrently and returns once all are done.
func (s *Seeder) buildAssistants(ctx context.Context) ([]models.Assistant, error) {
	out := make([]models.Assistant, len(s.Assistants))

	g, ctx := errgroup.WithContext(ctx)
	for i, seed := range s.Assistants {
		i, seed := i, seed
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hashed, err := credentials.Hash(seed.Password, s.Cost)
			if err != nil {
				return fmt.Errorf("assistant %s: %w", seed.ID, err)
			}
			out[i] = models.Assistant{
				ID:       seed.ID,
				Name:     seed.Name,
				Phone:    seed.Phone,
				Role:     seed.Role,
				Password: hashed,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Seeder) buildCenters() []models.Center {
	now := s.Now()
	out := make([]models.Center, len(s.Centers))
	for i, c := range s.Centers {
		out[i] = models.Center{ID: c.ID, Name: c.Name, CreatedAt: now}
	}
	return out
}

// insert writes docs as one batch. The driver rejects an empty batch, so an
// empty fixture list is a no-op.
func insert(ctx context.Context, db Database, name string, docs []any) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	n, err := db.InsertMany(ctx, name, docs)
	if err != nil {
		return 0, &database.OperationError{Op: "insertMany", Collection: name, Err: err}
	}
	return n, nil
}

func toDocs[T any](items []T) []any {
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
