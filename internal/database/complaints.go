package database

import (
	"go-sales-diary/internal/models"
	"go-sales-diary/internal/store"
)

// Complaints is the customer-service ticket list. Newest first; no
// operation ever deletes a ticket.
type Complaints struct {
	store store.Store
}

func NewComplaints(s store.Store) *Complaints {
	return &Complaints{store: s}
}

func (r *Complaints) List() []models.Complaint {
	list, _ := store.ReadJSON[[]models.Complaint](r.store, store.KeyCRM)
	return list
}

// Add prepends the new ticket so the list stays newest-first.
func (r *Complaints) Add(c models.Complaint) error {
	list := append([]models.Complaint{c}, r.List()...)
	return store.WriteJSON(r.store, store.KeyCRM, list)
}

// Toggle flips the resolution state of one ticket. Open becomes
// resolved, resolved reopens - the only transition there is, and it
// only ever happens on explicit user action.
func (r *Complaints) Toggle(id string) (models.Complaint, error) {
	list := r.List()
	for i := range list {
		if list[i].ID == id {
			list[i].IsResolved = !list[i].IsResolved
			return list[i], store.WriteJSON(r.store, store.KeyCRM, list)
		}
	}
	return models.Complaint{}, ErrNotFound
}
