package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"topphysics/database"
	"topphysics/internal/credentials"
	"topphysics/internal/models"
)

// Verify reads the seeded collections back and checks them against the
// fixtures: the exact id sets, a matching bcrypt hash per administrator,
// and empty students and history. All problems are returned joined.
func (s *Seeder) Verify(ctx context.Context, db Database) error {
	var problems []error

	assistantDocs, err := documents(ctx, db, Assistants)
	if err != nil {
		return err
	}
	want := make(map[string]AssistantSeed, len(s.Assistants))
	for _, a := range s.Assistants {
		want[a.ID] = a
	}
	seen := make(map[string]bool, len(assistantDocs))
	for _, raw := range assistantDocs {
		var a models.Assistant
		if err := bson.Unmarshal(raw, &a); err != nil {
			problems = append(problems, fmt.Errorf("assistants: decode: %w", err))
			continue
		}
		fixture, ok := want[a.ID]
		switch {
		case !ok:
			problems = append(problems, fmt.Errorf("assistants: unexpected id %q", a.ID))
			continue
		case seen[a.ID]:
			problems = append(problems, fmt.Errorf("assistants: duplicate id %q", a.ID))
			continue
		}
		seen[a.ID] = true
		if a.Password == fixture.Password {
			problems = append(problems, fmt.Errorf("assistants: %s stores its plaintext password", a.ID))
		} else if err := credentials.Check(a.Password, fixture.Password); err != nil {
			problems = append(problems, fmt.Errorf("assistants: %s: %w", a.ID, err))
		}
	}
	for id := range want {
		if !seen[id] {
			problems = append(problems, fmt.Errorf("assistants: missing id %q", id))
		}
	}

	centerDocs, err := documents(ctx, db, Centers)
	if err != nil {
		return err
	}
	wantCenters := make(map[int]bool, len(s.Centers))
	for _, c := range s.Centers {
		wantCenters[c.ID] = true
	}
	seenCenters := make(map[int]bool, len(centerDocs))
	for _, raw := range centerDocs {
		var c models.Center
		if err := bson.Unmarshal(raw, &c); err != nil {
			problems = append(problems, fmt.Errorf("centers: decode: %w", err))
			continue
		}
		switch {
		case !wantCenters[c.ID]:
			problems = append(problems, fmt.Errorf("centers: unexpected id %d", c.ID))
		case seenCenters[c.ID]:
			problems = append(problems, fmt.Errorf("centers: duplicate id %d", c.ID))
		}
		seenCenters[c.ID] = true
	}
	for id := range wantCenters {
		if !seenCenters[id] {
			problems = append(problems, fmt.Errorf("centers: missing id %d", id))
		}
	}

	for _, name := range []string{Students, History} {
		docs, err := documents(ctx, db, name)
		if err != nil {
			return err
		}
		if len(docs) != 0 {
			problems = append(problems, fmt.Errorf("%s: %d documents, want 0", name, len(docs)))
		}
	}

	return errors.Join(problems...)
}

func documents(ctx context.Context, db Database, name string) ([]bson.Raw, error) {
	docs, err := db.Documents(ctx, name)
	if err != nil {
		return nil, &database.OperationError{Op: "find", Collection: name, Err: err}
	}
	return docs, nil
}
