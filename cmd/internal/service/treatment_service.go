package service

import (
	"context"
	"strings"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DefaultTreatmentService struct {
	TreatmentRepo TreatmentRepository
	BookingRepo   BookingRepository
	Validate      *validator.Validate
}

func NewTreatmentService(treatmentRepo TreatmentRepository, bookingRepo BookingRepository, validate *validator.Validate) *DefaultTreatmentService {
	return &DefaultTreatmentService{TreatmentRepo: treatmentRepo, BookingRepo: bookingRepo, Validate: validate}
}

func (t *DefaultTreatmentService) GetServices(ctx context.Context) ([]*entity.ServiceName, apierror.ErrorResponse) {
	names, err := t.TreatmentRepo.FindNames(ctx)
	if err != nil {
		log.Errorf("failed to fetch services: %v", err)
		return nil, apierror.InternalServerError
	}
	return names, nil
}

// GetAvailable runs the availability calculation for one date.
func (t *DefaultTreatmentService) GetAvailable(ctx context.Context, date string) ([]*entity.Service, apierror.ErrorResponse) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, apierror.NewMissingParamError("date")
	}

	services, err := t.TreatmentRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch services: %v", err)
		return nil, apierror.InternalServerError
	}

	bookings, err := t.BookingRepo.FindByDate(ctx, date)
	if err != nil {
		log.Errorf("failed to fetch bookings for %s: %v", date, err)
		return nil, apierror.InternalServerError
	}
	return ComputeAvailability(services, bookings), nil
}

// Seed upserts every service by name. It stops at the first invalid entry
// or store failure and reports how many were written before it.
func (t *DefaultTreatmentService) Seed(ctx context.Context, services []*entity.Service) (int, error) {
	for i, s := range services {
		utils.Sanitize(s)
		if err := t.Validate.Struct(s); err != nil {
			return i, apierror.FromValidationError(err)
		}
		if err := t.TreatmentRepo.Upsert(ctx, s); err != nil {
			log.Errorf("failed to seed service %q: %v", s.Name, err)
			return i, err
		}
	}
	return len(services), nil
}
