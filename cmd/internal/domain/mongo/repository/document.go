package repository

import (
	"context"
	"errors"
	"fmt"

	"doctorsportal/cmd/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ServiceCollection = "services"
	BookingCollection = "booking"
	UserCollection    = "users"
	DoctorCollection  = "doctors"
)

// toDocument merges free-form fields with the known keys into one bson.M.
// Known keys win; empty known values listed in omitEmpty are dropped.
func toDocument(extra entity.Fields, known map[string]string, omitEmpty ...string) bson.M {
	doc := make(bson.M, len(extra)+len(known))
	for k, v := range extra {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	for k, v := range known {
		doc[k] = v
	}
	for _, k := range omitEmpty {
		if known[k] == "" {
			delete(doc, k)
		}
	}
	return doc
}

// fromDocument splits a stored document into its id, the string values of
// keys, and the free-form remainder.
func fromDocument(doc bson.M, keys ...string) (string, map[string]string, entity.Fields) {
	id := idString(doc["_id"])
	known := make(map[string]string, len(keys))
	extra := make(entity.Fields, len(doc))
	for k, v := range doc {
		extra[k] = v
	}
	delete(extra, "_id")
	for _, k := range keys {
		if s, ok := doc[k].(string); ok {
			known[k] = s
		}
		delete(extra, k)
	}
	return id, known, extra
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

func findAll(ctx context.Context, coll *mongo.Collection, filter any) ([]bson.M, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func translate(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", entity.ErrDuplicateKey, err)
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func toUpdateResult(res *mongo.UpdateResult) *entity.UpdateResult {
	out := &entity.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := idString(res.UpsertedID)
		out.UpsertedID = &id
	}
	return out
}
