package service

import (
	"context"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// BookingResponse carries either the freshly inserted booking's result or,
// for a repeated submission, the booking already on file.
type BookingResponse struct {
	Success bool                 `json:"success"`
	Booking *entity.Booking      `json:"booking,omitempty"`
	Result  *entity.InsertResult `json:"result,omitempty"`
}

type DefaultBookingService struct {
	BookingRepo BookingRepository
	Validate    *validator.Validate
}

func NewBookingService(bookingRepo BookingRepository, validate *validator.Validate) *DefaultBookingService {
	return &DefaultBookingService{BookingRepo: bookingRepo, Validate: validate}
}

// GetPatientBookings only serves callers asking for their own bookings.
func (b *DefaultBookingService) GetPatientBookings(ctx context.Context, patient, callerEmail string) ([]*entity.Booking, apierror.ErrorResponse) {
	if patient == "" || patient != callerEmail {
		return nil, apierror.ForbiddenAccessError
	}

	bookings, err := b.BookingRepo.FindByPatient(ctx, patient)
	if err != nil {
		log.Errorf("failed to fetch bookings of %s: %v", patient, err)
		return nil, apierror.InternalServerError
	}
	return bookings, nil
}

func (b *DefaultBookingService) CreateBooking(ctx context.Context, booking *entity.Booking) (*BookingResponse, apierror.ErrorResponse) {
	utils.Sanitize(booking)
	if err := b.Validate.Struct(booking); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	existing, result, err := b.BookingRepo.InsertIfAbsent(ctx, booking)
	if err != nil {
		log.Errorf("failed to save booking of %s for %s on %s: %v", booking.Patient, booking.Treatment, booking.Date, err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return &BookingResponse{Success: false, Booking: existing}, nil
	}
	return &BookingResponse{Success: true, Result: result}, nil
}
