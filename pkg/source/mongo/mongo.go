// Package mongo loads pattern snapshots from a MongoDB collection.
//
// Each document in the collection is one pattern, decoded with the bson tags
// of [pattern.Pattern]. The source is read-only: it never writes or updates
// documents.
//
//	src, err := mongo.New(ctx, mongo.Config{
//	    URI:        "mongodb://localhost:27017",
//	    Database:   "patternmap",
//	    Collection: "patterns",
//	})
//	if err != nil {
//	    return err
//	}
//	defer src.Close(ctx)
//	patterns, err := src.Load(ctx)
package mongo

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/patternmap/pkg/errors"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

// Defaults for [Config].
const (
	DefaultDatabase   = "patternmap"
	DefaultCollection = "patterns"
	DefaultTimeout    = 10 * time.Second
)

// Config selects the collection to read.
type Config struct {
	URI        string
	Database   string
	Collection string

	// Types restricts the snapshot to the given pattern types. Empty loads all.
	Types []pattern.Type

	// Timeout bounds connecting and each Load call.
	Timeout time.Duration
}

// withDefaults fills empty fields and validates the result.
func (c Config) withDefaults() (Config, error) {
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.Collection == "" {
		c.Collection = DefaultCollection
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if err := errors.ValidateMongoURI(c.URI); err != nil {
		return c, err
	}
	if err := errors.ValidateCollectionName(c.Database); err != nil {
		return c, err
	}
	if err := errors.ValidateCollectionName(c.Collection); err != nil {
		return c, err
	}
	return c, nil
}

// Source reads patterns from one collection.
type Source struct {
	client *driver.Client
	coll   *driver.Collection
	cfg    Config
}

// New connects to MongoDB and verifies the server is reachable.
func New(ctx context.Context, cfg Config) (*Source, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := driver.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, backendError(err, "connect to mongo")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, backendError(err, "ping mongo")
	}

	return &Source{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		cfg:    cfg,
	}, nil
}

// Name returns "mongo:<database>.<collection>".
func (s *Source) Name() string {
	return Name(s.cfg)
}

// Name formats the source name for cfg without connecting.
func Name(cfg Config) string {
	cfg, _ = cfg.withDefaults()
	return fmt.Sprintf("mongo:%s.%s", cfg.Database, cfg.Collection)
}

// Load reads every matching document, sorted by id, and validates the result.
func (s *Source) Load(ctx context.Context) ([]pattern.Pattern, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	cur, err := s.coll.Find(ctx, Filter(s.cfg.Types), options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, backendError(err, "query %s", s.Name())
	}
	defer cur.Close(ctx)

	patterns := []pattern.Pattern{}
	if err := cur.All(ctx, &patterns); err != nil {
		return nil, backendError(err, "decode %s", s.Name())
	}
	if err := pattern.Validate(patterns); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "%s", s.Name())
	}
	return patterns, nil
}

// Close disconnects the client.
func (s *Source) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Filter builds the query document for the given type restriction.
func Filter(types []pattern.Type) bson.D {
	if len(types) == 0 {
		return bson.D{}
	}
	values := make(bson.A, len(types))
	for i, t := range types {
		values[i] = string(t)
	}
	return bson.D{{Key: "type", Value: bson.D{{Key: "$in", Value: values}}}}
}

// backendError classifies a driver failure as a timeout or a network error.
func backendError(err error, format string, args ...any) error {
	if stderrors.Is(err, context.DeadlineExceeded) || driver.IsTimeout(err) {
		return errors.Wrap(errors.ErrCodeTimeout, err, format, args...)
	}
	return errors.Wrap(errors.ErrCodeNetwork, err, format, args...)
}
