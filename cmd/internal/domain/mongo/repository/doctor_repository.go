package repository

import (
	"context"

	"doctorsportal/cmd/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DefaultDoctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *DefaultDoctorRepository {
	return &DefaultDoctorRepository{coll: db.Collection(DoctorCollection)}
}

func (d *DefaultDoctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	docs, err := findAll(ctx, d.coll, bson.M{})
	if err != nil {
		return nil, err
	}

	doctors := make([]*entity.Doctor, len(docs))
	for i, doc := range docs {
		id, known, extra := fromDocument(doc, "email")
		doctors[i] = &entity.Doctor{ID: id, Email: known["email"], Profile: extra}
	}
	return doctors, nil
}

func (d *DefaultDoctorRepository) Insert(ctx context.Context, doctor *entity.Doctor) (*entity.InsertResult, error) {
	doc := toDocument(doctor.Profile, map[string]string{"email": doctor.Email})
	res, err := d.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, translate(err)
	}
	return &entity.InsertResult{Acknowledged: true, InsertedID: idString(res.InsertedID)}, nil
}

func (d *DefaultDoctorRepository) DeleteByEmail(ctx context.Context, email string) (*entity.DeleteResult, error) {
	res, err := d.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	return &entity.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
