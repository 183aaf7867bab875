// Package store keeps the back office's local copy of the API's entities.
package store

import "sync"

// Entity is anything identified by an API-assigned id.
type Entity interface {
	GetID() uint
}

// Collection mirrors one API collection plus the record currently selected
// for editing. Ids are unique within a collection.
type Collection[T Entity] struct {
	mu       sync.RWMutex
	items    []T
	selected *T
}

func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// Set replaces the contents wholesale and clears the selection.
func (c *Collection[T]) Set(items []T) {
	next := make([]T, 0, len(items))
	seen := make(map[uint]int, len(items))
	for _, it := range items {
		if i, dup := seen[it.GetID()]; dup {
			next[i] = it
			continue
		}
		seen[it.GetID()] = len(next)
		next = append(next, it)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = next
	c.selected = nil
}

// Add appends item, or replaces the record with the same id.
func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(item.GetID()); i >= 0 {
		c.items[i] = item
		return
	}
	c.items = append(c.items, item)
}

// Update replaces the record with item's id. Unknown ids are ignored.
func (c *Collection[T]) Update(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(item.GetID())
	if i < 0 {
		return false
	}
	c.items[i] = item
	if c.selected != nil && (*c.selected).GetID() == item.GetID() {
		sel := item
		c.selected = &sel
	}
	return true
}

func (c *Collection[T]) Remove(id uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	if c.selected != nil && (*c.selected).GetID() == id {
		c.selected = nil
	}
	return true
}

// Select marks the record with id as selected; unknown ids clear the selection.
func (c *Collection[T]) Select(id uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		c.selected = nil
		return false
	}
	sel := c.items[i]
	c.selected = &sel
	return true
}

func (c *Collection[T]) Selected() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.selected == nil {
		var zero T
		return zero, false
	}
	return *c.selected, true
}

func (c *Collection[T]) ClearSelected() {
	c.mu.Lock()
	c.selected = nil
	c.mu.Unlock()
}

func (c *Collection[T]) Clear() {
	c.mu.Lock()
	c.items = []T{}
	c.selected = nil
	c.mu.Unlock()
}

// Items returns a copy of the records in insertion order.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Find(id uint) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// indexOf expects c.mu to be held.
func (c *Collection[T]) indexOf(id uint) int {
	for i := range c.items {
		if c.items[i].GetID() == id {
			return i
		}
	}
	return -1
}
