package directory

import "locshare/internal/domain"

func ptr(f float64) *float64 { return &f }

// SampleUsers returns the static providers the roster can be seeded with.
func SampleUsers() []domain.User {
	return []domain.User{
		{
			ID:          "p-1",
			PhoneNumber: "+44 20 7946 0001",
			Role:        domain.RoleProvider,
			Service:     "taxi",
			Location:    &domain.Location{Latitude: 51.5074, Longitude: -0.1278},
			Rating:      ptr(4.5),
		},
		{
			ID:          "p-2",
			PhoneNumber: "+44 20 7946 0002",
			Role:        domain.RoleProvider,
			Service:     "delivery",
			Location:    &domain.Location{Latitude: 51.5155, Longitude: -0.1419},
			Rating:      ptr(4.8),
		},
		{
			ID:          "p-3",
			PhoneNumber: "+44 20 7946 0003",
			Role:        domain.RoleProvider,
			Service:     "plumber",
			Location:    &domain.Location{Latitude: 51.5033, Longitude: -0.1195},
			Rating:      ptr(4.2),
		},
		{
			ID:          "c-1",
			PhoneNumber: "+44 20 7946 0100",
			Role:        domain.RoleCustomer,
			Location:    &domain.Location{Latitude: 51.5094, Longitude: -0.1180},
		},
	}
}
