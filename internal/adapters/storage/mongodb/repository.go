// Package mongodb provides a CharacterRepository backed by a MongoDB
// collection. Each character is one document keyed by its UUID string.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/jsamuelsen11/character-service/internal/domain"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

// Default names used when the configuration leaves them empty.
const (
	DefaultDatabase   = "drawsteel"
	DefaultCollection = "characters"
)

// Compile-time check that Repository implements ports.CharacterRepository.
var _ ports.CharacterRepository = (*Repository)(nil)

// Options configures the MongoDB connection.
type Options struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// Repository stores characters in a MongoDB collection.
type Repository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

type document struct {
	ID    string `bson:"_id"`
	Name  string `bson:"name"`
	Class string `bson:"class,omitempty"`
}

// Open connects to MongoDB and pings the primary within opts.ConnectTimeout.
func Open(ctx context.Context, opts Options) (*Repository, error) {
	if opts.URI == "" {
		return nil, errors.New("mongodb uri is required")
	}
	if opts.Database == "" {
		opts.Database = DefaultDatabase
	}
	if opts.Collection == "" {
		opts.Collection = DefaultCollection
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 10 * time.Second
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(opts.URI).
		SetServerSelectionTimeout(opts.ConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return NewFromClient(client, opts.Database, opts.Collection), nil
}

// NewFromClient wraps an already connected client.
func NewFromClient(client *mongo.Client, database, collection string) *Repository {
	return &Repository{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}
}

// Close disconnects the client.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// Add inserts c. A duplicate _id yields domain.ErrConflict.
func (r *Repository) Add(ctx context.Context, c character.Character) (character.ID, error) {
	if _, err := r.collection.InsertOne(ctx, toDocument(c)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return character.ID{}, fmt.Errorf("character %s: %w", c.ID, domain.ErrConflict)
		}
		return character.ID{}, fmt.Errorf("insert character: %w", err)
	}
	return c.ID, nil
}

// Get returns the character with the given ID, or nil.
func (r *Repository) Get(ctx context.Context, id character.ID) (*character.Character, error) {
	var doc document
	err := r.collection.FindOne(ctx, byID(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find character: %w", err)
	}

	c, err := doc.toDomain()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update replaces the whole document for c.ID.
func (r *Repository) Update(ctx context.Context, c character.Character) (bool, error) {
	res, err := r.collection.ReplaceOne(ctx, byID(c.ID), toDocument(c))
	if err != nil {
		return false, fmt.Errorf("replace character: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the document for id.
func (r *Repository) Delete(ctx context.Context, id character.ID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, byID(id))
	if err != nil {
		return false, fmt.Errorf("delete character: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// List returns every document in the collection.
func (r *Repository) List(ctx context.Context) ([]character.Character, error) {
	cur, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find characters: %w", err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode characters: %w", err)
	}

	out := make([]character.Character, 0, len(docs))
	for _, d := range docs {
		c, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func byID(id character.ID) bson.D {
	return bson.D{{Key: "_id", Value: id.String()}}
}

func toDocument(c character.Character) document {
	return document{ID: c.ID.String(), Name: c.Name, Class: string(c.Class)}
}

func (d document) toDomain() (character.Character, error) {
	id, err := character.ParseID(d.ID)
	if err != nil {
		return character.Character{}, fmt.Errorf("decode character document: %w", err)
	}
	return character.Character{ID: id, Name: d.Name, Class: character.Class(d.Class)}, nil
}
