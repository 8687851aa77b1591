package routes

import (
	"context"
	"net/http"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type DoctorService interface {
	GetDoctors(ctx context.Context) ([]*entity.Doctor, apierror.ErrorResponse)
	CreateDoctor(ctx context.Context, doctor *entity.Doctor) (*entity.InsertResult, apierror.ErrorResponse)
	DeleteDoctor(ctx context.Context, email string) (*entity.DeleteResult, apierror.ErrorResponse)
}

type DefaultDoctorRoute struct {
	DoctorService DoctorService
}

func NewDoctorDefault(doctorService DoctorService) *DefaultDoctorRoute {
	return &DefaultDoctorRoute{DoctorService: doctorService}
}

func (d *DefaultDoctorRoute) GetDoctors(c echo.Context) error {
	doctors, apierr := d.DoctorService.GetDoctors(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doctors)
}

func (d *DefaultDoctorRoute) CreateDoctor(c echo.Context) error {
	var doctor entity.Doctor
	if err := c.Bind(&doctor); err != nil {
		return c.JSON(apierror.MalformedBodyError.Code(), apierror.MalformedBodyError)
	}

	result, apierr := d.DoctorService.CreateDoctor(c.Request().Context(), &doctor)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}

func (d *DefaultDoctorRoute) DeleteDoctor(c echo.Context) error {
	result, apierr := d.DoctorService.DeleteDoctor(c.Request().Context(), c.Param("email"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}
