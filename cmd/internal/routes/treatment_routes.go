package routes

import (
	"context"
	"net/http"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type TreatmentService interface {
	GetServices(ctx context.Context) ([]*entity.ServiceName, apierror.ErrorResponse)
	GetAvailable(ctx context.Context, date string) ([]*entity.Service, apierror.ErrorResponse)
}

type DefaultTreatmentRoute struct {
	TreatmentService TreatmentService
}

func NewTreatmentDefault(treatmentService TreatmentService) *DefaultTreatmentRoute {
	return &DefaultTreatmentRoute{TreatmentService: treatmentService}
}

func (t *DefaultTreatmentRoute) GetServices(c echo.Context) error {
	names, apierr := t.TreatmentService.GetServices(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, names)
}

// GetAvailable answers /available?date=D with every service and its free slots.
func (t *DefaultTreatmentRoute) GetAvailable(c echo.Context) error {
	services, apierr := t.TreatmentService.GetAvailable(c.Request().Context(), c.QueryParam("date"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, services)
}
