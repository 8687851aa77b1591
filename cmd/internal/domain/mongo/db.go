package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctorsportal/cmd/internal/domain/mongo/repository"
)

type Options struct {
	URI      string
	User     string
	Password string
	Database string
}

// Connect dials the cluster, pings it and makes sure the indexes the
// repositories rely on exist.
func Connect(ctx context.Context, opts Options) (*mongo.Client, *mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetRetryWrites(true)
	if opts.User != "" {
		clientOpts.SetAuth(options.Credential{Username: opts.User, Password: opts.Password})
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(opts.Database)
	if err := EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, db, nil
}

type uniqueIndex struct {
	collection string
	name       string
	keys       []string
}

var uniqueIndexes = []uniqueIndex{
	{repository.BookingCollection, "booking_identity", []string{"treatment", "date", "patient"}},
	{repository.UserCollection, "user_email", []string{"email"}},
	{repository.DoctorCollection, "doctor_email", []string{"email"}},
	{repository.ServiceCollection, "service_name", []string{"name"}},
}

// EnsureIndexes creates the unique indexes; creating an existing index is a
// no-op. When stored documents already violate one, the error names the
// index and how many key groups hold duplicates. Those have to be removed
// by hand (keep one document per group) before the server can start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range uniqueIndexes {
		keys := bson.D{}
		for _, k := range idx.keys {
			keys = append(keys, bson.E{Key: k, Value: 1})
		}
		model := mongo.IndexModel{
			Keys:    keys,
			Options: options.Index().SetUnique(true).SetName(idx.name),
		}

		coll := db.Collection(idx.collection)
		_, err := coll.Indexes().CreateOne(ctx, model)
		if err == nil {
			continue
		}
		if !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create index %s on %s: %w", idx.name, idx.collection, err)
		}

		groups, cerr := countDuplicateGroups(ctx, coll, idx.keys)
		if cerr != nil {
			log.Errorf("failed to count duplicates for index %s on %s: %v", idx.name, idx.collection, cerr)
			return fmt.Errorf("create index %s on %s: %w", idx.name, idx.collection, err)
		}
		log.Errorf("index %s on %s: %d duplicate groups must be removed by hand", idx.name, idx.collection, groups)
		return fmt.Errorf("create index %s on %s: %d duplicate groups: %w", idx.name, idx.collection, groups, err)
	}
	return nil
}

func countDuplicateGroups(ctx context.Context, coll *mongo.Collection, keys []string) (int, error) {
	id := bson.M{}
	for _, k := range keys {
		id[k] = "$" + k
	}
	cursor, err := coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": id, "n": bson.M{"$sum": 1}}}},
		{{Key: "$match", Value: bson.M{"n": bson.M{"$gt": 1}}}},
		{{Key: "$count", Value: "groups"}},
	})
	if err != nil {
		return 0, err
	}

	var out []struct {
		Groups int `bson:"groups"`
	}
	if err := cursor.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Groups, nil
}
