// Package directory holds the in-memory user roster and its active subset.
package directory

import (
	"sync"

	"locshare/internal/domain"
)

// Directory is the user roster plus the subset of users currently live on the
// map. Ids are not required to be unique: every entry whose id matches is
// updated together, and removal from the active subset drops all of them.
type Directory struct {
	mu     sync.RWMutex
	users  []domain.User
	active []domain.User
}

// New creates a Directory whose roster starts with seed. The active subset
// starts empty.
func New(seed ...domain.User) *Directory {
	d := &Directory{
		users:  make([]domain.User, 0, len(seed)),
		active: make([]domain.User, 0),
	}
	for _, u := range seed {
		d.users = append(d.users, u.Clone())
	}
	return d
}

// AddUser appends user to both the roster and the active subset.
func (d *Directory) AddUser(user domain.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, user.Clone())
	d.active = append(d.active, user.Clone())
}

// UpdateUserLocation sets the location of every user with the given id.
func (d *Directory) UpdateUserLocation(userID string, lat, lng float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	set := func(u *domain.User) {
		u.Location = &domain.Location{Latitude: lat, Longitude: lng}
	}
	apply(d.users, userID, set)
	apply(d.active, userID, set)
}

// UpdateUserRating folds rating into every user with the given id. The first
// rating is taken as is; later ones are averaged with the current value. A
// stored rating of 0 counts as unrated. The range is not checked here.
func (d *Directory) UpdateUserRating(userID string, rating float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	set := func(u *domain.User) {
		next := rating
		if u.Rating != nil && *u.Rating != 0 {
			next = (*u.Rating + rating) / 2
		}
		u.Rating = &next
	}
	apply(d.users, userID, set)
	apply(d.active, userID, set)
}

// AddActiveUser appends user to the active subset only.
func (d *Directory) AddActiveUser(user domain.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = append(d.active, user.Clone())
}

// RemoveActiveUser drops every active entry with the given id. The roster is
// not touched.
func (d *Directory) RemoveActiveUser(userID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.active[:0]
	for _, u := range d.active {
		if u.ID != userID {
			kept = append(kept, u)
		}
	}
	d.active = kept
}

// Users returns a copy of the roster in insertion order.
func (d *Directory) Users() []domain.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return snapshot(d.users)
}

// ActiveUsers returns a copy of the active subset in insertion order.
func (d *Directory) ActiveUsers() []domain.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return snapshot(d.active)
}

// FindUser returns the first roster entry with the given id.
func (d *Directory) FindUser(userID string) (domain.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.ID == userID {
			return u.Clone(), true
		}
	}
	return domain.User{}, false
}

// FindActiveUser returns the first active entry with the given id.
func (d *Directory) FindActiveUser(userID string) (domain.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.active {
		if u.ID == userID {
			return u.Clone(), true
		}
	}
	return domain.User{}, false
}

func apply(users []domain.User, userID string, fn func(*domain.User)) {
	for i := range users {
		if users[i].ID == userID {
			fn(&users[i])
		}
	}
}

func snapshot(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = u.Clone()
	}
	return out
}
