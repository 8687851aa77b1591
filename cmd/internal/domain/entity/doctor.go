package entity

// Doctor is keyed by Email; the rest of the record (name, specialty, image...)
// is opaque to the API.
type Doctor struct {
	ID      string `validate:"-"`
	Email   string `validate:"required"`
	Profile Fields `validate:"-"`
}

func (d Doctor) MarshalJSON() ([]byte, error) {
	return joinFields(d.Profile, map[string]string{
		"_id":   d.ID,
		"email": d.Email,
	}, "_id")
}

func (d *Doctor) UnmarshalJSON(data []byte) error {
	known, extra, err := splitFields(data, "_id", "email")
	if err != nil {
		return err
	}
	*d = Doctor{
		ID:      known["_id"],
		Email:   known["email"],
		Profile: extra,
	}
	return nil
}
