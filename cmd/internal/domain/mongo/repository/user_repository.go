package repository

import (
	"context"

	"doctorsportal/cmd/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DefaultUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *DefaultUserRepository {
	return &DefaultUserRepository{coll: db.Collection(UserCollection)}
}

func (u *DefaultUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	docs, err := findAll(ctx, u.coll, bson.M{})
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(docs))
	for i, doc := range docs {
		users[i] = toUser(doc)
	}
	return users, nil
}

func (u *DefaultUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc bson.M
	err := u.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toUser(doc), nil
}

// Replace overwrites the record keyed by user.Email, creating it when
// absent. The stored role survives the replace: the pipeline reads it on the
// server, so a concurrent SetRole cannot be undone. user.Role only fills in
// a missing role.
func (u *DefaultUserRepository) Replace(ctx context.Context, user *entity.User) (*entity.UpdateResult, error) {
	filter := bson.M{"email": user.Email}
	update := replacePipeline(user)
	opts := options.Update().SetUpsert(true)

	res, err := u.coll.UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		// lost a race with another first-time upsert of this email, the
		// record exists now so the retry takes the update path
		res, err = u.coll.UpdateOne(ctx, filter, update, opts)
	}
	if err != nil {
		return nil, translate(err)
	}
	return toUpdateResult(res), nil
}

// replacePipeline swaps the whole document for the user's fields while
// keeping _id and role from the stored one. Client values are wrapped in
// $literal so strings starting with "$" are not read as field paths.
func replacePipeline(user *entity.User) mongo.Pipeline {
	doc := toDocument(user.Profile, map[string]string{"email": user.Email})
	fields := make(bson.M, len(doc)+2)
	for k, v := range doc {
		fields[k] = bson.M{"$literal": v}
	}
	fields["_id"] = "$_id"

	var role any = "$role"
	if user.Role != "" {
		role = bson.M{"$ifNull": bson.A{"$role", bson.M{"$literal": user.Role}}}
	}
	fields["role"] = role

	return mongo.Pipeline{{{Key: "$replaceWith", Value: fields}}}
}

func (u *DefaultUserRepository) SetRole(ctx context.Context, email, role string) (*entity.UpdateResult, error) {
	res, err := u.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, err
	}
	return toUpdateResult(res), nil
}

func (u *DefaultUserRepository) DeleteByEmail(ctx context.Context, email string) (*entity.DeleteResult, error) {
	res, err := u.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	return &entity.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func toUser(doc bson.M) *entity.User {
	id, known, extra := fromDocument(doc, "email", "role")
	return &entity.User{ID: id, Email: known["email"], Role: known["role"], Profile: extra}
}
