package repository

import (
	"errors"

	"doctorsportal/cmd/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Known keys get their own columns so they can be indexed; the free-form
// remainder of each record is kept as a JSON column.

type serviceRow struct {
	ID    string   `gorm:"primaryKey"`
	Name  string   `gorm:"not null;uniqueIndex"`
	Slots []string `gorm:"serializer:json"`
}

func (serviceRow) TableName() string { return "services" }

type bookingRow struct {
	ID        string        `gorm:"primaryKey"`
	Treatment string        `gorm:"not null;uniqueIndex:idx_booking_identity,priority:1"`
	Date      string        `gorm:"not null;uniqueIndex:idx_booking_identity,priority:2;index"`
	Patient   string        `gorm:"not null;uniqueIndex:idx_booking_identity,priority:3;index"`
	Slot      string        `gorm:"not null"`
	Extra     entity.Fields `gorm:"serializer:json"`
}

func (bookingRow) TableName() string { return "bookings" }

type userRow struct {
	ID      string        `gorm:"primaryKey"`
	Email   string        `gorm:"not null;uniqueIndex"`
	Role    string        `gorm:"not null;default:''"`
	Profile entity.Fields `gorm:"serializer:json"`
}

func (userRow) TableName() string { return "users" }

type doctorRow struct {
	ID      string        `gorm:"primaryKey"`
	Email   string        `gorm:"not null;uniqueIndex"`
	Profile entity.Fields `gorm:"serializer:json"`
}

func (doctorRow) TableName() string { return "doctors" }

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{&serviceRow{}, &bookingRow{}, &userRow{}, &doctorRow{}}
}

func newID() string {
	return uuid.NewString()
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entity.ErrDuplicateKey
	}
	return err
}

// nonNil keeps empty listings serializing as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
