package routes

import (
	"context"
	"net/http"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/service"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	AdminChecker
	GetUsers(ctx context.Context) ([]*entity.User, apierror.ErrorResponse)
	UpsertUser(ctx context.Context, email string, user *entity.User) (*service.UpsertUserResponse, apierror.ErrorResponse)
	MakeAdmin(ctx context.Context, email string) (*entity.UpdateResult, apierror.ErrorResponse)
	DeleteUser(ctx context.Context, email string) (*entity.DeleteResult, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (u *DefaultUserRoute) GetUsers(c echo.Context) error {
	users, apierr := u.UserService.GetUsers(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, users)
}

func (u *DefaultUserRoute) GetAdmin(c echo.Context) error {
	isAdmin, apierr := u.UserService.IsAdmin(c.Request().Context(), c.Param("email"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"admin": isAdmin})
}

// UpsertUser stores the body as the complete user record for :email and
// hands back a fresh access token.
func (u *DefaultUserRoute) UpsertUser(c echo.Context) error {
	var user entity.User
	if err := c.Bind(&user); err != nil {
		return c.JSON(apierror.MalformedBodyError.Code(), apierror.MalformedBodyError)
	}

	resp, apierr := u.UserService.UpsertUser(c.Request().Context(), c.Param("email"), &user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (u *DefaultUserRoute) MakeAdmin(c echo.Context) error {
	result, apierr := u.UserService.MakeAdmin(c.Request().Context(), c.Param("email"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}

func (u *DefaultUserRoute) DeleteUser(c echo.Context) error {
	result, apierr := u.UserService.DeleteUser(c.Request().Context(), c.Param("email"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}
