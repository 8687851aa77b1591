package repository

import (
	"context"
	"errors"

	"doctorsportal/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *DefaultBookingRepository {
	return &DefaultBookingRepository{db: db}
}

func (b *DefaultBookingRepository) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	return b.find(ctx, "date = ?", date)
}

func (b *DefaultBookingRepository) FindByPatient(ctx context.Context, patient string) ([]*entity.Booking, error) {
	return b.find(ctx, "patient = ?", patient)
}

// InsertIfAbsent stores booking unless one with the same treatment, date and
// patient exists. The unique index makes the check and the insert a single
// statement, so concurrent callers cannot both succeed. When a booking
// already exists it is returned and the insert result is nil.
func (b *DefaultBookingRepository) InsertIfAbsent(ctx context.Context, booking *entity.Booking) (*entity.Booking, *entity.InsertResult, error) {
	row := &bookingRow{
		ID:        newID(),
		Treatment: booking.Treatment,
		Date:      booking.Date,
		Patient:   booking.Patient,
		Slot:      booking.Slot,
		Extra:     booking.Extra.Clone(),
	}

	res := b.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row)
	if res.Error != nil {
		return nil, nil, translate(res.Error)
	}

	if res.RowsAffected == 1 {
		return nil, &entity.InsertResult{Acknowledged: true, InsertedID: row.ID}, nil
	}

	var existing bookingRow
	err := b.db.WithContext(ctx).
		Where("treatment = ? AND date = ? AND patient = ?", booking.Treatment, booking.Date, booking.Patient).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, errors.New("booking conflicted but no existing record was found")
	}
	if err != nil {
		return nil, nil, err
	}
	return toBooking(&existing), nil, nil
}

func (b *DefaultBookingRepository) find(ctx context.Context, query string, arg string) ([]*entity.Booking, error) {
	var rows []*bookingRow
	err := b.db.WithContext(ctx).Where(query, arg).Order("rowid").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]*entity.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = toBooking(row)
	}
	return bookings, nil
}

func toBooking(row *bookingRow) *entity.Booking {
	return &entity.Booking{
		ID:        row.ID,
		Treatment: row.Treatment,
		Date:      row.Date,
		Slot:      row.Slot,
		Patient:   row.Patient,
		Extra:     row.Extra,
	}
}
