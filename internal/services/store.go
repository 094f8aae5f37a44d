package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// DocumentStore is the interface that wraps the document store operations used by the services.
type DocumentStore interface {
	// Method Insert appends "doc" to "collection" and returns the generated identifier.
	//
	// If the store is unreachable or rejects the write, the error will be returned together with an empty identifier.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// Method InsertIfAbsent inserts "doc" unless a document matching "key" already exists in "collection".
	//
	// The boolean result reports whether a new document was created.
	InsertIfAbsent(ctx context.Context, collection string, key bson.M, doc any) (bool, error)
	// Method Find decodes documents of "collection" matching "filter" into "results" (a pointer to a slice).
	//
	// A nil filter matches everything, "limit" <= 0 means no limit.
	Find(ctx context.Context, collection string, filter any, limit int64, results any) error
	// Method EnsureUniqueIndex makes "field" unique across the documents of "collection".
	//
	// Creating an index that already exists succeeds.
	EnsureUniqueIndex(ctx context.Context, collection, field string) error
}
