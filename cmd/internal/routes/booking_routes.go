package routes

import (
	"context"
	"net/http"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type BookingService interface {
	GetPatientBookings(ctx context.Context, patient, callerEmail string) ([]*entity.Booking, apierror.ErrorResponse)
	CreateBooking(ctx context.Context, booking *entity.Booking) (*service.BookingResponse, apierror.ErrorResponse)
}

type DefaultBookingRoute struct {
	BookingService BookingService
}

func NewBookingDefault(bookingService BookingService) *DefaultBookingRoute {
	return &DefaultBookingRoute{BookingService: bookingService}
}

func (b *DefaultBookingRoute) GetBookings(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(apierror.UnauthorizedError.Code(), apierror.UnauthorizedError)
	}

	bookings, apierr := b.BookingService.GetPatientBookings(c.Request().Context(), c.QueryParam("patient"), data.Email)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (b *DefaultBookingRoute) CreateBooking(c echo.Context) error {
	var booking entity.Booking
	if err := c.Bind(&booking); err != nil {
		return c.JSON(apierror.MalformedBodyError.Code(), apierror.MalformedBodyError)
	}

	resp, apierr := b.BookingService.CreateBooking(c.Request().Context(), &booking)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
