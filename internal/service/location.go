package service

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"locshare/internal/domain"
	"locshare/internal/geo"
	"locshare/internal/geolocation"
	"locshare/internal/phone"
)

const defaultSubscribedLimit = 5

// SubscribedLimits are the list sizes the map offers.
var SubscribedLimits = []int{3, 5, 10, 15, 20}

// LocationService records the caller's position and builds the list of
// subscribed users shown next to the map.
type LocationService struct {
	store LocationStore
}

// NewLocationService creates a new LocationService.
func NewLocationService(store LocationStore) *LocationService {
	return &LocationService{store: store}
}

// UpdateLocation asks provider for a fix and upserts it for phoneNumber.
// The number is formatted the way registration stores it, so one user maps
// to one record. An empty number is a no-op. When the fix cannot be
// obtained the update is abandoned and nothing is written.
func (s *LocationService) UpdateLocation(ctx context.Context, phoneNumber string, provider geolocation.Provider) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return nil
	}
	phoneNumber, err := normalizePhone(phoneNumber)
	if err != nil {
		return err
	}

	pos, err := provider.CurrentPosition(ctx)
	if err != nil {
		log.Printf("failed to update location for %q: %v", phoneNumber, err)
		return err
	}

	if !geo.IsValidLatitude(pos.Latitude) || !geo.IsValidLongitude(pos.Longitude) {
		return ErrInvalidLocation
	}

	return s.store.UpsertLocation(ctx, phoneNumber, pos.Latitude, pos.Longitude)
}

// ListLocations returns every stored location record.
func (s *LocationService) ListLocations(ctx context.Context) ([]domain.LocationRecord, error) {
	return s.store.GetAllLocations(ctx)
}

// SubscribedUser is a user derived from a location record, annotated with
// its distance to the caller.
type SubscribedUser struct {
	User       domain.User
	DistanceKm float64
	UpdatedAt  time.Time
}

// SubscribedUsers re-reads the record store and turns every record into a
// user keyed by its phone number. When the caller has a record of its own
// the list is ordered nearest first; otherwise store order is kept and
// distances are zero. limit 0 means the default size.
func (s *LocationService) SubscribedUsers(ctx context.Context, phoneNumber string, limit int) ([]SubscribedUser, error) {
	if limit == 0 {
		limit = defaultSubscribedLimit
	}
	if !isOfferedLimit(limit) {
		return nil, ErrInvalidLimit
	}
	if strings.TrimSpace(phoneNumber) != "" {
		formatted, err := normalizePhone(phoneNumber)
		if err != nil {
			return nil, err
		}
		phoneNumber = formatted
	}

	records, err := s.store.GetAllLocations(ctx)
	if err != nil {
		return nil, err
	}

	var origin *domain.Location
	for _, r := range records {
		if phoneNumber != "" && r.PhoneNumber == phoneNumber {
			origin = &domain.Location{Latitude: r.Latitude, Longitude: r.Longitude}
			break
		}
	}

	users := make([]SubscribedUser, 0, len(records))
	for _, r := range records {
		su := SubscribedUser{
			User: domain.User{
				ID:          r.PhoneNumber,
				PhoneNumber: r.PhoneNumber,
				Role:        domain.RoleUnknown,
				Location:    &domain.Location{Latitude: r.Latitude, Longitude: r.Longitude},
			},
			UpdatedAt: r.Timestamp,
		}
		if origin != nil {
			su.DistanceKm = geo.HaversineKm(origin.Latitude, origin.Longitude, r.Latitude, r.Longitude)
		}
		users = append(users, su)
	}

	if origin != nil {
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].DistanceKm < users[j].DistanceKm
		})
	}

	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func isOfferedLimit(limit int) bool {
	for _, l := range SubscribedLimits {
		if l == limit {
			return true
		}
	}
	return false
}

// normalizePhone formats raw and rejects anything that is not a full
// international number. Rejected input never reaches the table, whose
// fields are separated by commas and rows by newlines.
func normalizePhone(raw string) (string, error) {
	formatted := phone.Format(raw)
	if !phone.IsValid(formatted) {
		return "", ErrInvalidPhoneNumber
	}
	return formatted, nil
}
