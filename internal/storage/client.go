// Package storage is the MongoDB-backed document store shared by all handlers.
package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Options configures Connect
type Options struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Client is a handle to one database. It is safe for concurrent use.
//
// A Client created from missing settings or an unreachable server is
// degraded: Available reports false and every operation fails with
// ErrUnavailable.
type Client struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
	reason  string
	logger  *zap.Logger
}

// Connect opens and pings a MongoDB connection. It never fails; problems
// are recorded on the returned Client instead.
func Connect(ctx context.Context, opts Options, logger *zap.Logger) *Client {
	c := &Client{timeout: opts.Timeout, logger: logger}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}

	switch {
	case opts.URI == "":
		return c.degrade("DATABASE_URL is not set", nil)
	case opts.Database == "":
		return c.degrade("DATABASE_NAME is not set", nil)
	}

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetServerSelectionTimeout(c.timeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	connectCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return c.degrade("failed to connect", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return c.degrade("failed to ping", err)
	}

	c.client = client
	c.db = client.Database(opts.Database)
	logger.Info("connected to document store", zap.String("database", opts.Database))
	return c
}

// NewClient wraps an already connected database
func NewClient(db *mongo.Database, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{client: db.Client(), db: db, timeout: timeout, logger: logger}
}

func (c *Client) degrade(reason string, err error) *Client {
	if err != nil {
		reason = fmt.Sprintf("%s: %v", reason, err)
	}
	c.reason = reason
	c.logger.Warn("document store unavailable, continuing in degraded mode", zap.String("reason", reason))
	return c
}

// Available reports whether the client holds a live connection
func (c *Client) Available() bool {
	return c != nil && c.db != nil
}

// Reason describes why the client is degraded. Empty when available.
func (c *Client) Reason() string {
	if c == nil {
		return "client not initialized"
	}
	return c.reason
}

// Name returns the database name, or an empty string when degraded
func (c *Client) Name() string {
	if !c.Available() {
		return ""
	}
	return c.db.Name()
}

// Close disconnects from the server
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect: %w", err)
	}
	return nil
}

// Insert appends doc to the collection and returns the generated identifier
// as a hex string.
func (c *Client) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if !c.Available() {
		return "", c.unavailable()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%w: insert into %s: %w", ErrWrite, collection, err)
	}
	return idString(res.InsertedID), nil
}

// InsertIfAbsent inserts doc unless a document matching key already exists.
// It reports whether a new document was created.
func (c *Client) InsertIfAbsent(ctx context.Context, collection string, key bson.M, doc any) (bool, error) {
	if !c.Available() {
		return false, c.unavailable()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.db.Collection(collection).UpdateOne(ctx, key,
		bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		// A concurrent upsert won the race on a unique index.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: upsert into %s: %w", ErrWrite, collection, err)
	}
	return res.UpsertedCount > 0, nil
}

// EnsureUniqueIndex creates an ascending unique index on field. The server
// treats an identical existing index as success.
func (c *Client) EnsureUniqueIndex(ctx context.Context, collection, field string) error {
	if !c.Available() {
		return c.unavailable()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(field + "_unique"),
	})
	if err != nil {
		return fmt.Errorf("%w: index %s.%s: %w", ErrWrite, collection, field, err)
	}
	return nil
}

// Find decodes the documents matching filter into results, which must be a
// pointer to a slice. A nil filter matches everything and limit <= 0 means
// no limit. Documents come back in storage order.
func (c *Client) Find(ctx context.Context, collection string, filter any, limit int64, results any) error {
	if !c.Available() {
		return c.unavailable()
	}
	if filter == nil {
		filter = bson.M{}
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := c.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("%w: find in %s: %w", ErrRead, collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrRead, collection, err)
	}
	return nil
}

// ListCollections returns the collection names of the database
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	if !c.Available() {
		return nil, c.unavailable()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	names, err := c.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: list collections: %w", ErrRead, err)
	}
	return names, nil
}

func (c *Client) unavailable() error {
	return fmt.Errorf("%w: %s", ErrUnavailable, c.Reason())
}

func idString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
