package domain

// Service is an entry of the service catalog a user picks before opening the map.
type Service struct {
	ID          string
	Name        string
	Description string
}

var catalog = []Service{
	{ID: "taxi", Name: "Taxi", Description: "Rides across town"},
	{ID: "delivery", Name: "Delivery", Description: "Parcels and groceries"},
	{ID: "plumber", Name: "Plumber", Description: "Leaks, pipes and boilers"},
	{ID: "electrician", Name: "Electrician", Description: "Wiring and repairs"},
	{ID: "cleaner", Name: "Cleaner", Description: "Home and office cleaning"},
}

// Services returns the service catalog.
func Services() []Service {
	out := make([]Service, len(catalog))
	copy(out, catalog)
	return out
}

// LookupService returns the catalog entry with the given ID.
func LookupService(id string) (Service, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
