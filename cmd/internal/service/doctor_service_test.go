package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"doctorsportal/cmd/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDoctor(t *testing.T) {
	ctx := context.Background()
	repo := &MockDoctorRepository{}
	svc := NewDoctorService(repo, validator.New())

	repo.On("Insert", ctx, mock.MatchedBy(func(d *entity.Doctor) bool { return d.Email == "doc@x.com" })).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: "d1"}, nil)
	repo.On("Insert", ctx, mock.MatchedBy(func(d *entity.Doctor) bool { return d.Email == "dup@x.com" })).
		Return(nil, fmt.Errorf("%w: E11000", entity.ErrDuplicateKey))

	res, apierr := svc.CreateDoctor(ctx, &entity.Doctor{Email: " doc@x.com", Profile: entity.Fields{"name": "Dr. Who"}})
	require.Nil(t, apierr)
	assert.Equal(t, "d1", res.InsertedID)

	_, apierr = svc.CreateDoctor(ctx, &entity.Doctor{Email: "dup@x.com"})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusConflict, apierr.Code())

	_, apierr = svc.CreateDoctor(ctx, &entity.Doctor{Profile: entity.Fields{"name": "No Email"}})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusBadRequest, apierr.Code())
}

func TestGetAndDeleteDoctors(t *testing.T) {
	ctx := context.Background()
	repo := &MockDoctorRepository{}
	svc := NewDoctorService(repo, validator.New())

	repo.On("FindAll", ctx).Return([]*entity.Doctor{{Email: "doc@x.com"}}, nil)
	repo.On("DeleteByEmail", ctx, "doc@x.com").Return(&entity.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	doctors, apierr := svc.GetDoctors(ctx)
	require.Nil(t, apierr)
	assert.Len(t, doctors, 1)

	res, apierr := svc.DeleteDoctor(ctx, "doc@x.com")
	require.Nil(t, apierr)
	assert.EqualValues(t, 1, res.DeletedCount)
}
