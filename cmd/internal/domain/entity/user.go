package entity

// RoleAdmin is the only role the API distinguishes.
const RoleAdmin = "admin"

// User is keyed by Email. Role is empty for ordinary users; every other
// profile key lives in Profile.
type User struct {
	ID      string `validate:"-"`
	Email   string `validate:"required"`
	Role    string `validate:"-"`
	Profile Fields `validate:"-"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u User) MarshalJSON() ([]byte, error) {
	return joinFields(u.Profile, map[string]string{
		"_id":   u.ID,
		"email": u.Email,
		"role":  u.Role,
	}, "_id", "role")
}

func (u *User) UnmarshalJSON(data []byte) error {
	known, extra, err := splitFields(data, "_id", "email", "role")
	if err != nil {
		return err
	}
	*u = User{
		ID:      known["_id"],
		Email:   known["email"],
		Role:    known["role"],
		Profile: extra,
	}
	return nil
}
