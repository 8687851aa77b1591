package service

import (
	"context"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UpsertUserResponse struct {
	Result *entity.UpdateResult `json:"result"`
	Token  string               `json:"token"`
}

type DefaultUserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
	Tokens   TokenIssuer
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, tokens TokenIssuer) *DefaultUserService {
	return &DefaultUserService{UserRepo: userRepo, Validate: validate, Tokens: tokens}
}

func (u *DefaultUserService) GetUsers(ctx context.Context) ([]*entity.User, apierror.ErrorResponse) {
	users, err := u.UserRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all users: %v", err)
		return nil, apierror.InternalServerError
	}
	return users, nil
}

// IsAdmin reports whether email belongs to a user with the admin role.
// An unknown email is simply not an admin.
func (u *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Errorf("failed to check if user %s is admin: %v", email, err)
		return false, apierror.InternalServerError
	}
	return user.IsAdmin(), nil
}

func (u *DefaultUserService) MakeAdmin(ctx context.Context, email string) (*entity.UpdateResult, apierror.ErrorResponse) {
	result, err := u.UserRepo.SetRole(ctx, email, entity.RoleAdmin)
	if err != nil {
		log.Errorf("failed to promote user %s: %v", email, err)
		return nil, apierror.InternalServerError
	}
	return result, nil
}

func (u *DefaultUserService) DeleteUser(ctx context.Context, email string) (*entity.DeleteResult, apierror.ErrorResponse) {
	result, err := u.UserRepo.DeleteByEmail(ctx, email)
	if err != nil {
		log.Errorf("failed to delete user %s: %v", email, err)
		return nil, apierror.InternalServerError
	}
	return result, nil
}

// UpsertUser replaces the whole record stored under email with user and
// issues a fresh token for that email. The role is never taken from the
// payload; the repository keeps whatever role is on file.
func (u *DefaultUserService) UpsertUser(ctx context.Context, email string, user *entity.User) (*UpsertUserResponse, apierror.ErrorResponse) {
	user.Email = email
	user.Role = ""
	utils.Sanitize(user)
	if err := u.Validate.Struct(user); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	result, err := u.UserRepo.Replace(ctx, user)
	if err != nil {
		log.Errorf("failed to upsert user %s: %v", user.Email, err)
		return nil, apierror.InternalServerError
	}

	token, err := u.Tokens.Issue(user.Email)
	if err != nil {
		log.Errorf("failed to sign token for %s: %v", user.Email, err)
		return nil, apierror.InternalServerError
	}
	return &UpsertUserResponse{Result: result, Token: token}, nil
}
