package service

import (
	"context"

	"doctorsportal/cmd/internal/domain/entity"
)

// Repositories are satisfied by both the mongo and the sqlite backends.
// Finders return nil, nil when nothing matches a single-record lookup.

type TreatmentRepository interface {
	FindAll(ctx context.Context) ([]*entity.Service, error)
	FindNames(ctx context.Context) ([]*entity.ServiceName, error)
	Upsert(ctx context.Context, service *entity.Service) error
}

type BookingRepository interface {
	FindByDate(ctx context.Context, date string) ([]*entity.Booking, error)
	FindByPatient(ctx context.Context, patient string) ([]*entity.Booking, error)
	InsertIfAbsent(ctx context.Context, booking *entity.Booking) (*entity.Booking, *entity.InsertResult, error)
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Replace overwrites the record for user.Email but keeps a stored role;
	// user.Role only applies to a record without one.
	Replace(ctx context.Context, user *entity.User) (*entity.UpdateResult, error)
	SetRole(ctx context.Context, email, role string) (*entity.UpdateResult, error)
	DeleteByEmail(ctx context.Context, email string) (*entity.DeleteResult, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]*entity.Doctor, error)
	Insert(ctx context.Context, doctor *entity.Doctor) (*entity.InsertResult, error)
	DeleteByEmail(ctx context.Context, email string) (*entity.DeleteResult, error)
}

// TokenIssuer signs access tokens for an email.
type TokenIssuer interface {
	Issue(email string) (string, error)
}
