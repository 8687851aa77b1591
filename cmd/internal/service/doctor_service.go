package service

import (
	"context"
	"errors"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DefaultDoctorService struct {
	DoctorRepo DoctorRepository
	Validate   *validator.Validate
}

func NewDoctorService(doctorRepo DoctorRepository, validate *validator.Validate) *DefaultDoctorService {
	return &DefaultDoctorService{DoctorRepo: doctorRepo, Validate: validate}
}

func (d *DefaultDoctorService) GetDoctors(ctx context.Context) ([]*entity.Doctor, apierror.ErrorResponse) {
	doctors, err := d.DoctorRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch doctors: %v", err)
		return nil, apierror.InternalServerError
	}
	return doctors, nil
}

func (d *DefaultDoctorService) CreateDoctor(ctx context.Context, doctor *entity.Doctor) (*entity.InsertResult, apierror.ErrorResponse) {
	utils.Sanitize(doctor)
	if err := d.Validate.Struct(doctor); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	result, err := d.DoctorRepo.Insert(ctx, doctor)
	if errors.Is(err, entity.ErrDuplicateKey) {
		return nil, apierror.DoctorExistsError
	}
	if err != nil {
		log.Errorf("failed to save doctor %s: %v", doctor.Email, err)
		return nil, apierror.InternalServerError
	}
	return result, nil
}

func (d *DefaultDoctorService) DeleteDoctor(ctx context.Context, email string) (*entity.DeleteResult, apierror.ErrorResponse) {
	result, err := d.DoctorRepo.DeleteByEmail(ctx, email)
	if err != nil {
		log.Errorf("failed to delete doctor %s: %v", email, err)
		return nil, apierror.InternalServerError
	}
	return result, nil
}
