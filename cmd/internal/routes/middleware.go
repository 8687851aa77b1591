package routes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
)

// AdminChecker answers whether an email belongs to an admin.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, apierror.ErrorResponse)
}

// TokenParser verifies an access token and returns its claims.
type TokenParser interface {
	Parse(raw string) (*utils.TokenData, error)
}

// VerifyJWT is the token gate. A missing or non-bearer Authorization header
// is a 401, a token that fails verification a 403. On success the claims are
// stored on the context for the handlers downstream.
func VerifyJWT(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, raw, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
				return c.JSON(apierror.UnauthorizedError.Code(), apierror.UnauthorizedError)
			}

			data, err := tokens.Parse(strings.TrimSpace(raw))
			if err != nil {
				return c.JSON(apierror.ForbiddenAccessError.Code(), apierror.ForbiddenAccessError)
			}

			utils.SetTokenDataCtx(c, data)
			return next(c)
		}
	}
}

// VerifyAdmin is the admin gate and must run after VerifyJWT.
func VerifyAdmin(admins AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			data, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(apierror.UnauthorizedError.Code(), apierror.UnauthorizedError)
			}

			ok, apierr := admins.IsAdmin(c.Request().Context(), data.Email)
			if apierr != nil {
				return c.JSON(apierr.Code(), apierr)
			}
			if !ok {
				return c.JSON(apierror.AdminForbiddenError.Code(), apierror.AdminForbiddenError)
			}
			return next(c)
		}
	}
}

// RateLimit limits requests per client IP, keyed on the connection's peer
// address. Forwarding headers are ignored since any caller can set them.
// A non-positive rps disables it.
func RateLimit(rps float64, burst int) echo.MiddlewareFunc {
	if rps <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return peerIP(c.Request()), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, apierror.NewSimple(http.StatusTooManyRequests, "Too many requests"))
		},
	})
}

var peerIP = echo.ExtractIPDirect()

// ErrorHandler logs server side failures before echo renders them.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		if code >= http.StatusInternalServerError {
			log.Errorf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
