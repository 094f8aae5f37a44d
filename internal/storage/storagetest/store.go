// Package storagetest provides an in-memory document store for tests.
package storagetest

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/benventuring/backend/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store keeps documents as BSON in memory. Filters passed to Find are
// ignored except for the limit; InsertIfAbsent matches on equality of every
// key field.
type Store struct {
	mu     sync.Mutex
	docs   map[string][]bson.Raw
	unique map[string][]string

	// Injected failures, wrapped with the matching storage sentinel
	FindErr   error
	InsertErr error
	UpsertErr error
	ListErr   error
	IndexErr  error
	// Unavailable makes every operation fail with storage.ErrUnavailable
	Unavailable bool
	DBName      string

	FindCalls   int
	InsertCalls int
	UpsertCalls int
}

// New creates an empty store
func New() *Store {
	return &Store{
		docs:   make(map[string][]bson.Raw),
		unique: make(map[string][]string),
		DBName: "test",
	}
}

// Insert stores doc with a fresh ObjectID
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.InsertCalls++

	if err := s.check(s.InsertErr, storage.ErrWrite); err != nil {
		return "", err
	}
	id, err := s.add(collection, doc)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// InsertIfAbsent stores doc unless a document matches key
func (s *Store) InsertIfAbsent(ctx context.Context, collection string, key bson.M, doc any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpsertCalls++

	if err := s.check(s.UpsertErr, storage.ErrWrite); err != nil {
		return false, err
	}
	for _, raw := range s.docs[collection] {
		if matches(raw, key) {
			return false, nil
		}
	}
	if _, err := s.add(collection, doc); err != nil {
		return false, err
	}
	return true, nil
}

// Find decodes up to limit documents of collection into results
func (s *Store) Find(ctx context.Context, collection string, filter any, limit int64, results any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FindCalls++

	if err := s.check(s.FindErr, storage.ErrRead); err != nil {
		return err
	}

	sliceVal := reflect.ValueOf(results).Elem()
	sliceVal.Set(sliceVal.Slice(0, 0))
	for i, raw := range s.docs[collection] {
		if limit > 0 && int64(i) >= limit {
			break
		}
		elem := reflect.New(sliceVal.Type().Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return fmt.Errorf("%w: %w", storage.ErrRead, err)
		}
		sliceVal.Set(reflect.Append(sliceVal, elem.Elem()))
	}
	return nil
}

// EnsureUniqueIndex makes later writes to collection fail when field
// repeats an existing string value
func (s *Store) EnsureUniqueIndex(ctx context.Context, collection, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(s.IndexErr, storage.ErrWrite); err != nil {
		return err
	}
	if !slices.Contains(s.unique[collection], field) {
		s.unique[collection] = append(s.unique[collection], field)
	}
	return nil
}

// UniqueIndexes returns the fields indexed as unique on collection
func (s *Store) UniqueIndexes(collection string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.unique[collection])
}

// ListCollections returns the names of collections holding documents
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(s.ListErr, storage.ErrRead); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	return names, nil
}

// Available reports false when Unavailable is set
func (s *Store) Available() bool { return !s.Unavailable }

// Reason describes the simulated outage
func (s *Store) Reason() string {
	if s.Unavailable {
		return "DATABASE_URL is not set"
	}
	return ""
}

// Name returns DBName
func (s *Store) Name() string { return s.DBName }

// Count returns the number of documents in collection
func (s *Store) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs[collection])
}

// Documents returns the stored documents of collection decoded as maps
func (s *Store) Documents(collection string) []bson.M {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]bson.M, 0, len(s.docs[collection]))
	for _, raw := range s.docs[collection] {
		var m bson.M
		if err := bson.Unmarshal(raw, &m); err == nil {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) check(injected, sentinel error) error {
	if s.Unavailable {
		return fmt.Errorf("%w: %s", storage.ErrUnavailable, s.Reason())
	}
	if injected != nil {
		return fmt.Errorf("%w: %w", sentinel, injected)
	}
	return nil
}

func (s *Store) add(collection string, doc any) (primitive.ObjectID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %w", storage.ErrWrite, err)
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %w", storage.ErrWrite, err)
	}

	for _, field := range s.unique[collection] {
		value, ok := bson.Raw(raw).Lookup(field).StringValueOK()
		if !ok {
			continue
		}
		for _, existing := range s.docs[collection] {
			if matches(existing, bson.M{field: value}) {
				return primitive.NilObjectID, fmt.Errorf("%w: duplicate key %s on %s", storage.ErrWrite, field, collection)
			}
		}
	}

	id := primitive.NewObjectID()
	withID := append(bson.D{{Key: "_id", Value: id}}, fields...)
	raw, err = bson.Marshal(withID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %w", storage.ErrWrite, err)
	}
	s.docs[collection] = append(s.docs[collection], raw)
	return id, nil
}

func matches(raw bson.Raw, key bson.M) bool {
	for field, want := range key {
		got, err := raw.LookupErr(field)
		if err != nil {
			return false
		}
		str, ok := got.StringValueOK()
		if !ok || str != fmt.Sprint(want) {
			return false
		}
	}
	return true
}
