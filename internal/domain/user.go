package domain

// Role represents what a user does on the platform.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleUnknown  Role = "unknown"
)

// Location is a point in decimal degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

// User represents a member of the directory.
type User struct {
	ID          string
	PhoneNumber string
	Role        Role
	Service     string    // Service catalog ID for providers, empty otherwise
	Location    *Location // nil until a position is known
	Rating      *float64  // nil until the first rating is submitted
}

// Clone returns a deep copy so callers cannot mutate stored pointers.
func (u User) Clone() User {
	if u.Location != nil {
		loc := *u.Location
		u.Location = &loc
	}
	if u.Rating != nil {
		r := *u.Rating
		u.Rating = &r
	}
	return u
}
