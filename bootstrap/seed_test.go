package bootstrap_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"topphysics/bootstrap"
	"topphysics/database"
	"topphysics/internal/credentials"
	"topphysics/internal/models"
	"topphysics/internal/testhelpers"
)

var seededAt = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func newTestSeeder(obs bootstrap.Observer) *bootstrap.Seeder {
	s := bootstrap.NewSeeder(obs)
	s.Cost = bcrypt.MinCost
	s.Now = func() time.Time { return seededAt }
	return s
}

func newEnsuredDB(t *testing.T) *testhelpers.MemoryDB {
	t.Helper()
	db := testhelpers.NewMemoryDB()
	if _, err := bootstrap.EnsureCollections(context.Background(), db, bootstrap.RequiredCollections, nil); err != nil {
		t.Fatalf("EnsureCollections: %v", err)
	}
	return db
}

func decodeAssistants(t *testing.T, db *testhelpers.MemoryDB) []models.Assistant {
	t.Helper()
	var out []models.Assistant
	for _, raw := range db.Raw(bootstrap.Assistants) {
		var a models.Assistant
		if err := bson.Unmarshal(raw, &a); err != nil {
			t.Fatalf("decode assistant: %v", err)
		}
		out = append(out, a)
	}
	return out
}

func decodeCenters(t *testing.T, db *testhelpers.MemoryDB) []models.Center {
	t.Helper()
	var out []models.Center
	for _, raw := range db.Raw(bootstrap.Centers) {
		var c models.Center
		if err := bson.Unmarshal(raw, &c); err != nil {
			t.Fatalf("decode center: %v", err)
		}
		out = append(out, c)
	}
	return out
}

func TestSeedCompleteness(t *testing.T) {
	db := newEnsuredDB(t)

	summary, err := newTestSeeder(nil).Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	if summary.AssistantsCreated != 2 || summary.StudentsCreated != 0 || summary.CentersCreated != 5 || !summary.HistoryCleared {
		t.Errorf("summary = %+v", summary)
	}

	var ids []string
	for _, a := range decodeAssistants(t, db) {
		ids = append(ids, a.ID)
		if a.Role != models.RoleAdmin {
			t.Errorf("%s role = %q, want admin", a.ID, a.Role)
		}
	}
	slices.Sort(ids)
	if !slices.Equal(ids, []string{"admin", "tony"}) {
		t.Errorf("assistant ids = %v", ids)
	}

	wantNames := map[int]string{
		1: "Future Center",
		2: "MCC Center",
		3: "Gaint Center",
		4: "St. Mary Ch. Nozha Center",
		5: "St. Mary Ch. Amiryah Center",
	}
	centers := decodeCenters(t, db)
	if len(centers) != len(wantNames) {
		t.Fatalf("centers = %d, want %d", len(centers), len(wantNames))
	}
	for _, c := range centers {
		if wantNames[c.ID] != c.Name {
			t.Errorf("center %d name = %q, want %q", c.ID, c.Name, wantNames[c.ID])
		}
		if !c.CreatedAt.Equal(seededAt) {
			t.Errorf("center %d createdAt = %v, want %v", c.ID, c.CreatedAt, seededAt)
		}
	}

	if n := db.Count(bootstrap.Students); n != 0 {
		t.Errorf("students = %d, want 0", n)
	}
	if n := db.Count(bootstrap.History); n != 0 {
		t.Errorf("history = %d, want 0", n)
	}
}

func TestSeedHashes(t *testing.T) {
	db := newEnsuredDB(t)

	if _, err := newTestSeeder(nil).Seed(context.Background(), db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	plain := map[string]string{"admin": "#$admin$#", "tony": "#$tony$#"}
	for _, a := range decodeAssistants(t, db) {
		if a.Password == plain[a.ID] {
			t.Errorf("%s: stored password equals plaintext", a.ID)
		}
		if err := credentials.Check(a.Password, plain[a.ID]); err != nil {
			t.Errorf("%s: Check(fixture) = %v", a.ID, err)
		}
		for _, wrong := range []string{"", "#$tony77$#", strings.ToUpper(plain[a.ID]), plain[a.ID] + " "} {
			if err := credentials.Check(a.Password, wrong); !errors.Is(err, credentials.ErrMismatch) {
				t.Errorf("%s: Check(%q) = %v, want ErrMismatch", a.ID, wrong, err)
			}
		}
	}
}

func TestSeedDefaultCost(t *testing.T) {
	db := newEnsuredDB(t)

	if _, err := bootstrap.NewSeeder(nil).Seed(context.Background(), db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	for _, a := range decodeAssistants(t, db) {
		cost, err := bcrypt.Cost([]byte(a.Password))
		if err != nil {
			t.Fatalf("%s: %v", a.ID, err)
		}
		if cost != 10 {
			t.Errorf("%s: cost = %d, want 10", a.ID, cost)
		}
	}
}

func TestSeedRerunChangesOnlyHashes(t *testing.T) {
	db := newEnsuredDB(t)
	s := newTestSeeder(nil)

	if _, err := s.Seed(context.Background(), db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	first := map[string]string{}
	for _, a := range decodeAssistants(t, db) {
		first[a.ID] = a.Password
	}

	summary, err := s.Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if summary.Deleted[bootstrap.Assistants] != 2 || summary.Deleted[bootstrap.Centers] != 5 {
		t.Errorf("Deleted = %v", summary.Deleted)
	}

	second := decodeAssistants(t, db)
	if len(second) != 2 {
		t.Fatalf("assistants after rerun = %d, want 2", len(second))
	}
	for _, a := range second {
		if a.Password == first[a.ID] {
			t.Errorf("%s: hash unchanged across runs", a.ID)
		}
	}
	if n := db.Count(bootstrap.Centers); n != 5 {
		t.Errorf("centers after rerun = %d, want 5", n)
	}
}

func TestSeedClearsPriorData(t *testing.T) {
	db := newEnsuredDB(t)
	for _, name := range bootstrap.RequiredCollections {
		if err := db.Put(name, bson.M{"id": "leftover"}, bson.M{"id": 99, "name": "old"}, bson.M{"junk": true}); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	rec := newRecorder()

	summary, err := newTestSeeder(rec).Seed(context.Background(), db)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	for _, name := range bootstrap.RequiredCollections {
		if summary.Deleted[name] != 3 || rec.cleared[name] != 3 {
			t.Errorf("%s: deleted %d (observed %d), want 3", name, summary.Deleted[name], rec.cleared[name])
		}
	}
	if db.Count(bootstrap.Students) != 0 || db.Count(bootstrap.History) != 0 {
		t.Error("students or history not empty")
	}
	for _, a := range decodeAssistants(t, db) {
		if a.ID != "admin" && a.ID != "tony" {
			t.Errorf("leftover assistant %q", a.ID)
		}
	}
	for _, c := range decodeCenters(t, db) {
		if c.ID < 1 || c.ID > 5 {
			t.Errorf("leftover center %d", c.ID)
		}
	}
	if rec.assistants != 2 || rec.centers != 5 {
		t.Errorf("observer saw %d assistants, %d centers", rec.assistants, rec.centers)
	}
}

func TestSeedClearsBeforeInserting(t *testing.T) {
	db := newEnsuredDB(t)
	before := len(db.Calls())

	if _, err := newTestSeeder(nil).Seed(context.Background(), db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	want := []string{
		"delete:students",
		"delete:assistants",
		"delete:history",
		"delete:centers",
		"insert:assistants",
		"insert:centers",
	}
	if got := db.Calls()[before:]; !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestSeedErrors(t *testing.T) {
	boom := errors.New("write concern timeout")

	tests := []struct {
		name           string
		op, collection string
		wantOp         string
		wantAssistants int
		wantCenters    int
	}{
		{"delete fails", "delete", bootstrap.History, "deleteMany", 0, 0},
		{"assistant insert fails", "insert", bootstrap.Assistants, "insertMany", 0, 0},
		{"center insert fails", "insert", bootstrap.Centers, "insertMany", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newEnsuredDB(t)
			db.Fail(tt.op, tt.collection, boom)

			_, err := newTestSeeder(nil).Seed(context.Background(), db)

			var opErr *database.OperationError
			if !errors.As(err, &opErr) {
				t.Fatalf("err = %v, want *OperationError", err)
			}
			if opErr.Op != tt.wantOp || opErr.Collection != tt.collection {
				t.Errorf("OperationError = %+v", opErr)
			}
			if !errors.Is(err, boom) {
				t.Error("error does not wrap the cause")
			}
			if n := db.Count(bootstrap.Assistants); n != tt.wantAssistants {
				t.Errorf("assistants = %d, want %d", n, tt.wantAssistants)
			}
			if n := db.Count(bootstrap.Centers); n != tt.wantCenters {
				t.Errorf("centers = %d, want %d", n, tt.wantCenters)
			}
		})
	}
}

func TestSeedHashFailureAbortsBeforeInsert(t *testing.T) {
	db := newEnsuredDB(t)
	s := newTestSeeder(nil)
	s.Cost = bcrypt.MaxCost + 1

	if _, err := s.Seed(context.Background(), db); err == nil {
		t.Fatal("Seed with invalid cost returned nil error")
	}
	for _, call := range db.Calls() {
		if strings.HasPrefix(call, "insert:") {
			t.Errorf("unexpected %s after hash failure", call)
		}
	}
}

func TestSeedRejectsBadFixtures(t *testing.T) {
	tests := []struct {
		name       string
		assistants []bootstrap.AssistantSeed
		centers    []bootstrap.CenterSeed
	}{
		{
			name:       "empty password",
			assistants: []bootstrap.AssistantSeed{{ID: "x", Name: "X", Phone: "01000000000", Role: models.RoleAdmin}},
			centers:    bootstrap.DefaultCenters,
		},
		{
			name:       "unknown role",
			assistants: []bootstrap.AssistantSeed{{ID: "x", Name: "X", Phone: "01000000000", Role: "teacher", Password: "p"}},
			centers:    bootstrap.DefaultCenters,
		},
		{
			name:       "short phone",
			assistants: []bootstrap.AssistantSeed{{ID: "x", Name: "X", Phone: "0100", Role: models.RoleAdmin, Password: "p"}},
			centers:    bootstrap.DefaultCenters,
		},
		{
			name:       "duplicate assistant",
			assistants: append(slices.Clone(bootstrap.DefaultAssistants), bootstrap.DefaultAssistants[0]),
			centers:    bootstrap.DefaultCenters,
		},
		{
			name:       "zero center id",
			assistants: bootstrap.DefaultAssistants,
			centers:    []bootstrap.CenterSeed{{ID: 0, Name: "Nowhere"}},
		},
		{
			name:       "duplicate center",
			assistants: bootstrap.DefaultAssistants,
			centers:    []bootstrap.CenterSeed{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newEnsuredDB(t)
			before := len(db.Calls())
			s := newTestSeeder(nil)
			s.Assistants = tt.assistants
			s.Centers = tt.centers

			if _, err := s.Seed(context.Background(), db); err == nil {
				t.Fatal("Seed returned nil error")
			}
			if calls := db.Calls()[before:]; len(calls) != 0 {
				t.Errorf("database touched before fixtures were valid: %v", calls)
			}
		})
	}
}
