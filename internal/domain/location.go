package domain

import "time"

// LocationRecord is the latest known position for a phone number.
type LocationRecord struct {
	PhoneNumber string
	Latitude    float64
	Longitude   float64
	Timestamp   time.Time
}
