// Package backoffice drives the CRUD screens of the repair shop back office:
// every screen fetches its list on mount, edits one record at a time through
// a form, applies the API's answer to the local store and asks before deleting.
package backoffice

import (
	"fmt"
	"net/url"
	"sync"

	"repairdesk-backend/store"

	"github.com/sirupsen/logrus"
)

// API is the remote collection a screen is bound to. *client.Resource satisfies it.
type API[T any] interface {
	List(query url.Values) ([]T, error)
	Create(in any) (*T, error)
	Update(id uint, in any) (*T, error)
	Delete(id uint) error
}

// Confirmer answers yes/no questions put to the operator.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Screen binds one API collection to one store collection.
type Screen[T store.Entity] struct {
	name    string
	api     API[T]
	items   *store.Collection[T]
	confirm Confirmer
	log     *logrus.Logger

	mu      sync.Mutex
	query   url.Values
	editing *T
	visible bool
}

func NewScreen[T store.Entity](name string, api API[T], items *store.Collection[T], confirm Confirmer, log *logrus.Logger) *Screen[T] {
	if confirm == nil {
		confirm = ConfirmFunc(func(string) bool { return false })
	}
	return &Screen[T]{name: name, api: api, items: items, confirm: confirm, log: log}
}

func (s *Screen[T]) Name() string { return s.name }

// Items is the collection the screen renders.
func (s *Screen[T]) Items() *store.Collection[T] { return s.items }

// Mount fetches the list and replaces the local collection with it.
// The query is kept and reused when the screen has to refetch.
func (s *Screen[T]) Mount(query url.Values) error {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
	return s.fetch("list")
}

func (s *Screen[T]) fetch(op string) error {
	s.mu.Lock()
	query := s.query
	s.mu.Unlock()

	items, err := s.api.List(query)
	if err != nil {
		return s.fail(op, 0, err)
	}
	s.items.Set(items)
	return nil
}

// New opens an empty form.
func (s *Screen[T]) New() {
	s.items.ClearSelected()
	s.mu.Lock()
	s.editing = nil
	s.visible = true
	s.mu.Unlock()
}

// Edit opens the form on the record with id. It reports false when the
// record is not in the collection.
func (s *Screen[T]) Edit(id uint) bool {
	if !s.items.Select(id) {
		return false
	}
	rec, _ := s.items.Selected()
	s.mu.Lock()
	s.editing = &rec
	s.visible = true
	s.mu.Unlock()
	return true
}

// Cancel closes the form without saving.
func (s *Screen[T]) Cancel() {
	s.items.ClearSelected()
	s.mu.Lock()
	s.editing = nil
	s.visible = false
	s.mu.Unlock()
}

// Editing returns the record the form is bound to, if any.
func (s *Screen[T]) Editing() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == nil {
		var zero T
		return zero, false
	}
	return *s.editing, true
}

func (s *Screen[T]) FormVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Submit creates a record (no record being edited) or updates the edited one,
// applies the server's answer to the collection and closes the form. When the
// API answers without a record the list is fetched again. The returned record
// is nil in that case. On failure the form stays open.
func (s *Screen[T]) Submit(input any) (*T, error) {
	s.mu.Lock()
	editing := s.editing
	s.mu.Unlock()

	var (
		rec *T
		err error
		op  = "create"
		id  uint
	)
	if editing == nil {
		rec, err = s.api.Create(input)
	} else {
		op, id = "update", (*editing).GetID()
		rec, err = s.api.Update(id, input)
	}
	if err != nil {
		return nil, s.fail(op, id, err)
	}

	switch {
	case rec == nil:
		if err := s.fetch("refetch"); err != nil {
			return nil, err
		}
	case editing == nil:
		s.items.Add(*rec)
	default:
		s.items.Update(*rec)
	}
	s.Cancel()
	return rec, nil
}

// Delete asks for confirmation, deletes through the API and then drops the
// record locally. It reports whether the record was deleted.
func (s *Screen[T]) Delete(id uint) (bool, error) {
	if !s.confirm.Confirm(fmt.Sprintf("Delete %s %d?", s.name, id)) {
		return false, nil
	}
	if err := s.api.Delete(id); err != nil {
		return false, s.fail("delete", id, err)
	}
	s.items.Remove(id)

	s.mu.Lock()
	if s.editing != nil && (*s.editing).GetID() == id {
		s.editing = nil
		s.visible = false
	}
	s.mu.Unlock()
	return true, nil
}

// fail logs a failed request and returns it wrapped. Nothing is retried.
func (s *Screen[T]) fail(op string, id uint, err error) error {
	if s.log != nil {
		entry := s.log.WithError(err).WithFields(logrus.Fields{"screen": s.name, "op": op})
		if id != 0 {
			entry = entry.WithField("id", id)
		}
		entry.Error("back office request failed")
	}
	return fmt.Errorf("%s %s: %w", s.name, op, err)
}
