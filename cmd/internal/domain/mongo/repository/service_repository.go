package repository

import (
	"context"

	"doctorsportal/cmd/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type serviceDocument struct {
	ID    any      `bson:"_id,omitempty"`
	Name  string   `bson:"name"`
	Slots []string `bson:"slots"`
}

type DefaultTreatmentRepository struct {
	coll *mongo.Collection
}

func NewTreatmentRepository(db *mongo.Database) *DefaultTreatmentRepository {
	return &DefaultTreatmentRepository{coll: db.Collection(ServiceCollection)}
}

func (t *DefaultTreatmentRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	return t.find(ctx, options.Find())
}

func (t *DefaultTreatmentRepository) FindNames(ctx context.Context) ([]*entity.ServiceName, error) {
	services, err := t.find(ctx, options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}

	names := make([]*entity.ServiceName, len(services))
	for i, s := range services {
		names[i] = &entity.ServiceName{ID: s.ID, Name: s.Name}
	}
	return names, nil
}

func (t *DefaultTreatmentRepository) Upsert(ctx context.Context, service *entity.Service) error {
	slots := service.Slots
	if slots == nil {
		slots = []string{}
	}
	_, err := t.coll.UpdateOne(ctx,
		bson.M{"name": service.Name},
		bson.M{"$set": bson.M{"slots": slots}},
		options.Update().SetUpsert(true),
	)
	return translate(err)
}

func (t *DefaultTreatmentRepository) find(ctx context.Context, opts *options.FindOptions) ([]*entity.Service, error) {
	cursor, err := t.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []serviceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	services := make([]*entity.Service, len(docs))
	for i, doc := range docs {
		slots := doc.Slots
		if slots == nil {
			slots = []string{}
		}
		services[i] = &entity.Service{ID: idString(doc.ID), Name: doc.Name, Slots: slots}
	}
	return services, nil
}
