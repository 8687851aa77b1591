package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const greeting = "Hello World Doctors Uncle"

type Handlers struct {
	Treatments *DefaultTreatmentRoute
	Bookings   *DefaultBookingRoute
	Users      *DefaultUserRoute
	Doctors    *DefaultDoctorRoute
}

type Options struct {
	Tokens         TokenParser
	RateLimitRPS   float64
	RateLimitBurst int
}

// Register mounts every endpoint on e with its gates.
func Register(e *echo.Echo, h *Handlers, opts Options) {
	token := VerifyJWT(opts.Tokens)
	admin := VerifyAdmin(h.Users.UserService)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, greeting)
	})

	// Services
	e.GET("/service", h.Treatments.GetServices)
	e.GET("/available", h.Treatments.GetAvailable)

	// Bookings
	e.GET("/booking", h.Bookings.GetBookings, token)
	e.POST("/booking", h.Bookings.CreateBooking)

	// Users
	e.GET("/user", h.Users.GetUsers, token)
	e.GET("/admin/:email", h.Users.GetAdmin)
	e.PUT("/user/admin/:email", h.Users.MakeAdmin, token, admin)
	e.PUT("/user/:email", h.Users.UpsertUser, RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	e.DELETE("/user/:email", h.Users.DeleteUser, token, admin)

	// Doctors
	e.GET("/doctor", h.Doctors.GetDoctors, token, admin)
	e.POST("/doctor", h.Doctors.CreateDoctor, token, admin)
	e.DELETE("/doctor/:email", h.Doctors.DeleteDoctor, token, admin)
}
