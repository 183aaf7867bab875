package controllers_test

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"repairdesk-backend/database"

	"gorm.io/gorm/schema"
)

// memRepo is an in-memory database.Repository keyed by the ID field.
type memRepo[T any] struct {
	mu     sync.Mutex
	items  map[uint]T
	nextID uint
}

func newMemRepo[T any](seed ...T) *memRepo[T] {
	r := &memRepo[T]{items: map[uint]T{}}
	for i := range seed {
		v := seed[i]
		r.put(&v)
	}
	return r
}

var naming = schema.NamingStrategy{}

func idOf(v reflect.Value) uint {
	return uint(v.FieldByName("ID").Uint())
}

func (r *memRepo[T]) put(v *T) {
	rv := reflect.ValueOf(v).Elem()
	id := idOf(rv)
	if id == 0 {
		r.nextID++
		id = r.nextID
		rv.FieldByName("ID").SetUint(uint64(id))
	} else if id > r.nextID {
		r.nextID = id
	}
	r.items[id] = *v
}

// field looks a struct field up by Go name or by GORM column name.
func field(rv reflect.Value, key string) (reflect.Value, bool) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Name == key || naming.ColumnName("", sf.Name) == key {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func (r *memRepo[T]) List(_ context.Context, where map[string]any) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []T{}
	for _, id := range ids {
		v := r.items[id]
		rv := reflect.ValueOf(v)
		match := true
		for k, want := range where {
			f, ok := field(rv, k)
			if !ok || !reflect.DeepEqual(f.Interface(), want) {
				match = false
				break
			}
		}
		if match {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memRepo[T]) Get(_ context.Context, id uint) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &v, nil
}

func (r *memRepo[T]) Create(_ context.Context, v *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(v)
	return nil
}

func (r *memRepo[T]) Update(_ context.Context, id uint, updates map[string]any) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	rv := reflect.ValueOf(&v).Elem()
	for k, val := range updates {
		f, ok := field(rv, k)
		if !ok {
			continue
		}
		f.Set(reflect.ValueOf(val).Convert(f.Type()))
	}
	r.items[id] = v
	return &v, nil
}

func (r *memRepo[T]) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return database.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
