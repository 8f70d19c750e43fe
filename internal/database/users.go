package database

import (
	"go-sales-diary/internal/models"
	"go-sales-diary/internal/store"
)

// Users holds the single local profile. There is no list and no key:
// saving is a full replace, logging out deletes it.
type Users struct {
	store store.Store
}

func NewUsers(s store.Store) *Users {
	return &Users{store: s}
}

func (r *Users) Get() (models.UserProfile, bool) {
	return store.ReadJSON[models.UserProfile](r.store, store.KeyUser)
}

func (r *Users) Save(p models.UserProfile) error {
	return store.WriteJSON(r.store, store.KeyUser, p)
}

// Clear removes the profile (logout). Sales and complaints survive.
func (r *Users) Clear() error {
	return r.store.Delete(store.KeyUser)
}
