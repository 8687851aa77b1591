package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"doctorsportal/cmd/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetPatientBookings_OnlyOwnBookings(t *testing.T) {
	ctx := context.Background()
	repo := &MockBookingRepository{}
	svc := NewBookingService(repo, validator.New())

	repo.On("FindByPatient", ctx, "a@x.com").Return([]*entity.Booking{{Patient: "a@x.com"}}, nil)

	bookings, apierr := svc.GetPatientBookings(ctx, "a@x.com", "a@x.com")
	require.Nil(t, apierr)
	assert.Len(t, bookings, 1)

	_, apierr = svc.GetPatientBookings(ctx, "a@x.com", "b@x.com")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())

	_, apierr = svc.GetPatientBookings(ctx, "", "")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusForbidden, apierr.Code())

	repo.AssertNumberOfCalls(t, "FindByPatient", 1)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	repo := &MockBookingRepository{}
	svc := NewBookingService(repo, validator.New())

	stored := &entity.Booking{ID: "b1", Treatment: "Teeth Cleaning", Date: "2026-10-20", Slot: "08.00 AM", Patient: "a@x.com"}
	repo.On("InsertIfAbsent", ctx, mock.Anything).
		Return(nil, &entity.InsertResult{Acknowledged: true, InsertedID: "b1"}, nil).Once()
	repo.On("InsertIfAbsent", ctx, mock.Anything).
		Return(stored, nil, nil).Once()

	req := &entity.Booking{Treatment: "Teeth Cleaning ", Date: "2026-10-20", Slot: "08.00 AM", Patient: "a@x.com"}
	resp, apierr := svc.CreateBooking(ctx, req)
	require.Nil(t, apierr)
	assert.True(t, resp.Success)
	assert.Equal(t, "b1", resp.Result.InsertedID)
	assert.Nil(t, resp.Booking)
	assert.Equal(t, "Teeth Cleaning", req.Treatment)

	resp, apierr = svc.CreateBooking(ctx, &entity.Booking{Treatment: "Teeth Cleaning", Date: "2026-10-20", Slot: "09.00 AM", Patient: "a@x.com"})
	require.Nil(t, apierr)
	assert.False(t, resp.Success)
	assert.Equal(t, stored, resp.Booking)
	assert.Nil(t, resp.Result)
}

func TestCreateBooking_Validation(t *testing.T) {
	svc := NewBookingService(&MockBookingRepository{}, validator.New())

	for _, b := range []*entity.Booking{
		{Date: "2026-10-20", Slot: "08.00 AM", Patient: "a@x.com"},
		{Treatment: "X", Slot: "08.00 AM", Patient: "a@x.com"},
		{Treatment: "X", Date: "2026-10-20", Patient: "a@x.com"},
		{Treatment: "X", Date: "2026-10-20", Slot: "08.00 AM", Patient: "   "},
	} {
		_, apierr := svc.CreateBooking(context.Background(), b)
		require.NotNil(t, apierr)
		assert.Equal(t, http.StatusBadRequest, apierr.Code())
	}
}

func TestCreateBooking_StoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := &MockBookingRepository{}
	svc := NewBookingService(repo, validator.New())

	repo.On("InsertIfAbsent", ctx, mock.Anything).Return(nil, nil, errors.New("no reachable servers"))

	_, apierr := svc.CreateBooking(ctx, &entity.Booking{Treatment: "X", Date: "2026-10-20", Slot: "1", Patient: "a@x.com"})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusInternalServerError, apierr.Code())
}
