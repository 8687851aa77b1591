package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingJSON_KeepsExtraFields(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{
		"treatment": "Teeth Cleaning",
		"date": "2026-10-20",
		"slot": "08.00 AM",
		"patient": "a@x.com",
		"patientName": "Ann",
		"price": 25
	}`), &b))

	assert.Equal(t, "Teeth Cleaning", b.Treatment)
	assert.Equal(t, "a@x.com", b.Patient)
	assert.Equal(t, Fields{"patientName": "Ann", "price": 25.0}, b.Extra)

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"treatment": "Teeth Cleaning",
		"date": "2026-10-20",
		"slot": "08.00 AM",
		"patient": "a@x.com",
		"patientName": "Ann",
		"price": 25
	}`, string(out))
}

func TestUserJSON_OmitsEmptyRole(t *testing.T) {
	out, err := json.Marshal(User{Email: "a@x.com", Profile: Fields{"name": "Ann"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@x.com","name":"Ann"}`, string(out))

	out, err = json.Marshal(User{ID: "1", Email: "a@x.com", Role: RoleAdmin})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"1","email":"a@x.com","role":"admin"}`, string(out))
}

func TestUnmarshal_RejectsNonObject(t *testing.T) {
	var d Doctor
	assert.Error(t, json.Unmarshal([]byte(`null`), &d))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &d))
}

func TestIsAdmin(t *testing.T) {
	var nobody *User
	assert.False(t, nobody.IsAdmin())
	assert.False(t, (&User{Role: "patient"}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}
