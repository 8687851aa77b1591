package repository

import (
	"context"
	"errors"

	"doctorsportal/cmd/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var bookingKeys = []string{"treatment", "date", "slot", "patient"}

type DefaultBookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *DefaultBookingRepository {
	return &DefaultBookingRepository{coll: db.Collection(BookingCollection)}
}

func (b *DefaultBookingRepository) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	return b.find(ctx, bson.M{"date": date})
}

func (b *DefaultBookingRepository) FindByPatient(ctx context.Context, patient string) ([]*entity.Booking, error) {
	return b.find(ctx, bson.M{"patient": patient})
}

// InsertIfAbsent upserts with $setOnInsert against the booking identity, so
// the existence check and the insert are one server-side operation. The
// unique index turns a lost race between two upserts into a duplicate key
// error, which is answered with the winner's record.
func (b *DefaultBookingRepository) InsertIfAbsent(ctx context.Context, booking *entity.Booking) (*entity.Booking, *entity.InsertResult, error) {
	filter := identity(booking)
	onInsert := toDocument(booking.Extra, map[string]string{"slot": booking.Slot})

	res, err := b.coll.UpdateOne(ctx, filter, bson.M{"$setOnInsert": onInsert}, options.Update().SetUpsert(true))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return nil, nil, err
	}
	if err == nil && res.UpsertedCount == 1 {
		return nil, &entity.InsertResult{Acknowledged: true, InsertedID: idString(res.UpsertedID)}, nil
	}

	var doc bson.M
	err = b.coll.FindOne(ctx, filter).Decode(&doc)
	if isNotFound(err) {
		return nil, nil, errors.New("booking conflicted but no existing record was found")
	}
	if err != nil {
		return nil, nil, err
	}
	return toBooking(doc), nil, nil
}

func (b *DefaultBookingRepository) find(ctx context.Context, filter bson.M) ([]*entity.Booking, error) {
	docs, err := findAll(ctx, b.coll, filter)
	if err != nil {
		return nil, err
	}

	bookings := make([]*entity.Booking, len(docs))
	for i, doc := range docs {
		bookings[i] = toBooking(doc)
	}
	return bookings, nil
}

func identity(booking *entity.Booking) bson.M {
	return bson.M{
		"treatment": booking.Treatment,
		"date":      booking.Date,
		"patient":   booking.Patient,
	}
}

func toBooking(doc bson.M) *entity.Booking {
	id, known, extra := fromDocument(doc, bookingKeys...)
	return &entity.Booking{
		ID:        id,
		Treatment: known["treatment"],
		Date:      known["date"],
		Slot:      known["slot"],
		Patient:   known["patient"],
		Extra:     extra,
	}
}
