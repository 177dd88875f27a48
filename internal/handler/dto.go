package handler

import (
	"locshare/internal/domain"
	"locshare/internal/locationstore"
	"locshare/internal/service"
)

// LocationBody is the JSON form of a position.
type LocationBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UserBody is the JSON form of a directory user.
type UserBody struct {
	ID          string        `json:"id"`
	PhoneNumber string        `json:"phone_number"`
	Role        string        `json:"role"`
	Service     string        `json:"service,omitempty"`
	Location    *LocationBody `json:"location,omitempty"`
	Rating      *float64      `json:"rating,omitempty"`
}

// LocationRecordResponse is the HTTP response for a stored location record.
type LocationRecordResponse struct {
	PhoneNumber string  `json:"phone_number"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timestamp   string  `json:"timestamp"`
}

// SubscribedUserResponse is a map list entry.
type SubscribedUserResponse struct {
	UserBody
	DistanceKm float64 `json:"distance_km"`
	UpdatedAt  string  `json:"updated_at"`
}

// ServiceResponse is a catalog entry.
type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toUserBody(u domain.User) UserBody {
	body := UserBody{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
		Service:     u.Service,
		Rating:      u.Rating,
	}
	if u.Location != nil {
		body.Location = &LocationBody{Latitude: u.Location.Latitude, Longitude: u.Location.Longitude}
	}
	return body
}

func fromUserBody(b UserBody) domain.User {
	u := domain.User{
		ID:          b.ID,
		PhoneNumber: b.PhoneNumber,
		Role:        domain.Role(b.Role),
		Service:     b.Service,
		Rating:      b.Rating,
	}
	if b.Location != nil {
		u.Location = &domain.Location{Latitude: b.Location.Latitude, Longitude: b.Location.Longitude}
	}
	return u
}

func toUserBodies(users []domain.User) []UserBody {
	out := make([]UserBody, 0, len(users))
	for _, u := range users {
		out = append(out, toUserBody(u))
	}
	return out
}

func toRecordResponse(r domain.LocationRecord) LocationRecordResponse {
	return LocationRecordResponse{
		PhoneNumber: r.PhoneNumber,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Timestamp:   r.Timestamp.UTC().Format(locationstore.TimestampLayout),
	}
}

func toSubscribedResponse(s service.SubscribedUser) SubscribedUserResponse {
	return SubscribedUserResponse{
		UserBody:   toUserBody(s.User),
		DistanceKm: s.DistanceKm,
		UpdatedAt:  s.UpdatedAt.UTC().Format(locationstore.TimestampLayout),
	}
}
