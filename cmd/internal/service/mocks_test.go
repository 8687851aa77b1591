package service

import (
	"context"

	"doctorsportal/cmd/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

var (
	_ TreatmentRepository = (*MockTreatmentRepository)(nil)
	_ BookingRepository   = (*MockBookingRepository)(nil)
	_ UserRepository      = (*MockUserRepository)(nil)
	_ DoctorRepository    = (*MockDoctorRepository)(nil)
	_ TokenIssuer         = (*MockTokenIssuer)(nil)
)

type MockTreatmentRepository struct{ mock.Mock }

func (m *MockTreatmentRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]*entity.Service)
	return services, args.Error(1)
}

func (m *MockTreatmentRepository) FindNames(ctx context.Context) ([]*entity.ServiceName, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]*entity.ServiceName)
	return names, args.Error(1)
}

func (m *MockTreatmentRepository) Upsert(ctx context.Context, service *entity.Service) error {
	return m.Called(ctx, service).Error(0)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	args := m.Called(ctx, date)
	bookings, _ := args.Get(0).([]*entity.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) FindByPatient(ctx context.Context, patient string) ([]*entity.Booking, error) {
	args := m.Called(ctx, patient)
	bookings, _ := args.Get(0).([]*entity.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) InsertIfAbsent(ctx context.Context, booking *entity.Booking) (*entity.Booking, *entity.InsertResult, error) {
	args := m.Called(ctx, booking)
	existing, _ := args.Get(0).(*entity.Booking)
	result, _ := args.Get(1).(*entity.InsertResult)
	return existing, result, args.Error(2)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*entity.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Replace(ctx context.Context, user *entity.User) (*entity.UpdateResult, error) {
	args := m.Called(ctx, user)
	result, _ := args.Get(0).(*entity.UpdateResult)
	return result, args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, email, role string) (*entity.UpdateResult, error) {
	args := m.Called(ctx, email, role)
	result, _ := args.Get(0).(*entity.UpdateResult)
	return result, args.Error(1)
}

func (m *MockUserRepository) DeleteByEmail(ctx context.Context, email string) (*entity.DeleteResult, error) {
	args := m.Called(ctx, email)
	result, _ := args.Get(0).(*entity.DeleteResult)
	return result, args.Error(1)
}

type MockDoctorRepository struct{ mock.Mock }

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]*entity.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorRepository) Insert(ctx context.Context, doctor *entity.Doctor) (*entity.InsertResult, error) {
	args := m.Called(ctx, doctor)
	result, _ := args.Get(0).(*entity.InsertResult)
	return result, args.Error(1)
}

func (m *MockDoctorRepository) DeleteByEmail(ctx context.Context, email string) (*entity.DeleteResult, error) {
	args := m.Called(ctx, email)
	result, _ := args.Get(0).(*entity.DeleteResult)
	return result, args.Error(1)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}
