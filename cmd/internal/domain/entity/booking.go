package entity

// Booking is a patient's reservation of one slot of a treatment on a date.
// Any keys the client sends besides the four below are kept in Extra and
// returned verbatim.
type Booking struct {
	ID        string `validate:"-"`
	Treatment string `validate:"required"`
	Date      string `validate:"required"`
	Slot      string `validate:"required"`
	Patient   string `validate:"required"`
	Extra     Fields `validate:"-"`
}

func (b Booking) MarshalJSON() ([]byte, error) {
	return joinFields(b.Extra, map[string]string{
		"_id":       b.ID,
		"treatment": b.Treatment,
		"date":      b.Date,
		"slot":      b.Slot,
		"patient":   b.Patient,
	}, "_id")
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	known, extra, err := splitFields(data, "_id", "treatment", "date", "slot", "patient")
	if err != nil {
		return err
	}
	*b = Booking{
		ID:        known["_id"],
		Treatment: known["treatment"],
		Date:      known["date"],
		Slot:      known["slot"],
		Patient:   known["patient"],
		Extra:     extra,
	}
	return nil
}
