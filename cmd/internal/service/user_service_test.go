package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/domain/sqlite"
	sqliterepo "doctorsportal/cmd/internal/domain/sqlite/repository"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIsAdmin(t *testing.T) {
	ctx := context.Background()
	repo := &MockUserRepository{}
	svc := NewUserService(repo, validator.New(), &MockTokenIssuer{})

	repo.On("FindByEmail", ctx, "admin@x.com").Return(&entity.User{Email: "admin@x.com", Role: entity.RoleAdmin}, nil)
	repo.On("FindByEmail", ctx, "user@x.com").Return(&entity.User{Email: "user@x.com"}, nil)
	repo.On("FindByEmail", ctx, "ghost@x.com").Return(nil, nil)
	repo.On("FindByEmail", ctx, "down@x.com").Return(nil, errors.New("timeout"))

	ok, apierr := svc.IsAdmin(ctx, "admin@x.com")
	require.Nil(t, apierr)
	assert.True(t, ok)

	ok, apierr = svc.IsAdmin(ctx, "user@x.com")
	require.Nil(t, apierr)
	assert.False(t, ok)

	ok, apierr = svc.IsAdmin(ctx, "ghost@x.com")
	require.Nil(t, apierr)
	assert.False(t, ok)

	_, apierr = svc.IsAdmin(ctx, "down@x.com")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusInternalServerError, apierr.Code())
}

func TestUpsertUser_IgnoresRoleInPayload(t *testing.T) {
	ctx := context.Background()
	repo := &MockUserRepository{}
	tokens := &MockTokenIssuer{}
	svc := NewUserService(repo, validator.New(), tokens)

	repo.On("Replace", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "a@x.com" && u.Role == "" && u.Profile["name"] == "Ann"
	})).Return(&entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
	tokens.On("Issue", "a@x.com").Return("signed", nil)

	resp, apierr := svc.UpsertUser(ctx, "a@x.com", &entity.User{Email: "ignored@x.com", Role: entity.RoleAdmin, Profile: entity.Fields{"name": "Ann"}})
	require.Nil(t, apierr)
	assert.Equal(t, "signed", resp.Token)
	assert.EqualValues(t, 1, resp.Result.MatchedCount)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

// promotingUserRepository promotes the user right before every replace,
// the way a concurrent PUT /user/admin/:email would.
type promotingUserRepository struct {
	*sqliterepo.DefaultUserRepository
}

func (p *promotingUserRepository) Replace(ctx context.Context, user *entity.User) (*entity.UpdateResult, error) {
	if _, err := p.SetRole(ctx, user.Email, entity.RoleAdmin); err != nil {
		return nil, err
	}
	return p.DefaultUserRepository.Replace(ctx, user)
}

func TestUpsertUser_ConcurrentPromotionSurvives(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	users := sqliterepo.NewUserRepository(db)
	_, err = users.Replace(ctx, &entity.User{Email: "a@x.com"})
	require.NoError(t, err)

	tokens := &MockTokenIssuer{}
	tokens.On("Issue", "a@x.com").Return("signed", nil)
	svc := NewUserService(&promotingUserRepository{users}, validator.New(), tokens)

	_, apierr := svc.UpsertUser(ctx, "a@x.com", &entity.User{Profile: entity.Fields{"name": "Ann"}})
	require.Nil(t, apierr)

	isAdmin, apierr := svc.IsAdmin(ctx, "a@x.com")
	require.Nil(t, apierr)
	assert.True(t, isAdmin)
}

func TestUpsertUser_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("missing email", func(t *testing.T) {
		svc := NewUserService(&MockUserRepository{}, validator.New(), &MockTokenIssuer{})
		_, apierr := svc.UpsertUser(ctx, "  ", &entity.User{})
		require.NotNil(t, apierr)
		assert.Equal(t, http.StatusBadRequest, apierr.Code())
	})

	t.Run("store failure", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("Replace", ctx, mock.Anything).Return(nil, errors.New("write concern"))
		svc := NewUserService(repo, validator.New(), &MockTokenIssuer{})

		_, apierr := svc.UpsertUser(ctx, "a@x.com", &entity.User{})
		require.NotNil(t, apierr)
		assert.Equal(t, http.StatusInternalServerError, apierr.Code())
	})

	t.Run("signing failure", func(t *testing.T) {
		repo := &MockUserRepository{}
		repo.On("Replace", ctx, mock.Anything).Return(&entity.UpdateResult{}, nil)
		tokens := &MockTokenIssuer{}
		tokens.On("Issue", "a@x.com").Return("", errors.New("bad key"))
		svc := NewUserService(repo, validator.New(), tokens)

		_, apierr := svc.UpsertUser(ctx, "a@x.com", &entity.User{})
		require.NotNil(t, apierr)
		assert.Equal(t, http.StatusInternalServerError, apierr.Code())
	})
}

func TestMakeAdminAndDeleteUser(t *testing.T) {
	ctx := context.Background()
	repo := &MockUserRepository{}
	svc := NewUserService(repo, validator.New(), &MockTokenIssuer{})

	repo.On("SetRole", ctx, "a@x.com", entity.RoleAdmin).Return(&entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
	repo.On("DeleteByEmail", ctx, "a@x.com").Return(&entity.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)
	repo.On("DeleteByEmail", ctx, "down@x.com").Return(nil, errors.New("boom"))

	res, apierr := svc.MakeAdmin(ctx, "a@x.com")
	require.Nil(t, apierr)
	assert.EqualValues(t, 1, res.ModifiedCount)

	del, apierr := svc.DeleteUser(ctx, "a@x.com")
	require.Nil(t, apierr)
	assert.EqualValues(t, 1, del.DeletedCount)

	_, apierr = svc.DeleteUser(ctx, "down@x.com")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusInternalServerError, apierr.Code())
}
