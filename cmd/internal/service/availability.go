package service

import "doctorsportal/cmd/internal/domain/entity"

// ComputeAvailability returns a copy of services where every slot taken by a
// booking for that service (matched by treatment name) has been removed.
// Slot order is preserved. The caller is expected to pass only the bookings
// of a single date; inputs are not modified.
func ComputeAvailability(services []*entity.Service, bookings []*entity.Booking) []*entity.Service {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	available := make([]*entity.Service, len(services))
	for i, s := range services {
		taken := booked[s.Name]
		free := make([]string, 0, len(s.Slots))
		for _, slot := range s.Slots {
			if _, ok := taken[slot]; !ok {
				free = append(free, slot)
			}
		}
		available[i] = &entity.Service{ID: s.ID, Name: s.Name, Slots: free}
	}
	return available
}
