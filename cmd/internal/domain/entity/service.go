package entity

// Service is a treatment offered by the clinic together with the ordered list
// of slot labels that can be booked on any given day.
type Service struct {
	ID    string   `json:"_id,omitempty" validate:"-"`
	Name  string   `json:"name" validate:"required"`
	Slots []string `json:"slots" validate:"required"`
}

// ServiceName is the projection served by the service listing.
type ServiceName struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}
