package testhelpers

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryDB is an in-memory stand-in for a MongoDB database. Documents are
// stored as marshalled BSON so tests read back exactly what the driver would.
type MemoryDB struct {
	mu          sync.Mutex
	collections map[string][]bson.Raw
	indexes     map[string][]string
	failures    map[string]error
	calls       []string
}

func NewMemoryDB(collections ...string) *MemoryDB {
	m := &MemoryDB{
		collections: make(map[string][]bson.Raw),
		indexes:     make(map[string][]string),
		failures:    make(map[string]error),
	}
	for _, name := range collections {
		m.collections[name] = nil
	}
	return m
}

// Fail makes every later call of op on collection return err. Ops are
// list, create, delete, insert, find and index; list ignores collection.
func (m *MemoryDB) Fail(op, collection string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[op+":"+collection] = err
}

// Calls returns "op:collection" for every call made so far, in order.
func (m *MemoryDB) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

// Put inserts arbitrary documents directly, creating the collection if needed.
func (m *MemoryDB) Put(name string, docs ...any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range docs {
		raw, err := bson.Marshal(d)
		if err != nil {
			return err
		}
		m.collections[name] = append(m.collections[name], raw)
	}
	if _, ok := m.collections[name]; !ok {
		m.collections[name] = nil
	}
	return nil
}

func (m *MemoryDB) Count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[name])
}

func (m *MemoryDB) Raw(name string) []bson.Raw {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.collections[name])
}

func (m *MemoryDB) Indexes(name string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.indexes[name])
}

func (m *MemoryDB) record(op, collection string) error {
	m.calls = append(m.calls, op+":"+collection)
	return m.failures[op+":"+collection]
}

func (m *MemoryDB) ListCollectionNames(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("list", ""); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryDB) CreateCollection(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("create", name); err != nil {
		return err
	}
	if _, ok := m.collections[name]; ok {
		return fmt.Errorf("collection %s already exists", name)
	}
	m.collections[name] = nil
	return nil
}

func (m *MemoryDB) DeleteAll(_ context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("delete", name); err != nil {
		return 0, err
	}
	n := int64(len(m.collections[name]))
	if _, ok := m.collections[name]; ok {
		m.collections[name] = nil
	}
	return n, nil
}

func (m *MemoryDB) InsertMany(_ context.Context, name string, docs []any) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("insert", name); err != nil {
		return 0, err
	}
	batch := make([]bson.Raw, 0, len(docs))
	for _, d := range docs {
		raw, err := bson.Marshal(d)
		if err != nil {
			return 0, err
		}
		batch = append(batch, raw)
	}
	m.collections[name] = append(m.collections[name], batch...)
	return len(batch), nil
}

func (m *MemoryDB) Documents(_ context.Context, name string) ([]bson.Raw, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("find", name); err != nil {
		return nil, err
	}
	return slices.Clone(m.collections[name]), nil
}

func (m *MemoryDB) EnsureUniqueIndex(_ context.Context, collection, field string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("index", collection); err != nil {
		return err
	}
	if !slices.Contains(m.indexes[collection], field) {
		m.indexes[collection] = append(m.indexes[collection], field)
	}
	return nil
}
