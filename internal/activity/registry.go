package activity

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrIDMismatch is returned when a registry document stores a type under a
// key that differs from its id.
var ErrIDMismatch = errors.New("activity type id does not match its key")

// Registry maps activity ids to types. The zero value is not usable; use
// NewRegistry.
type Registry struct {
	types map[ID]Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[ID]Type)}
}

// Create registers a new type under the smallest unused id and returns it.
func (r *Registry) Create(name string) ID {
	id := r.nextUnusedID()
	r.types[id] = Type{ID: id, Name: name}
	return id
}

func (r *Registry) nextUnusedID() ID {
	var id ID
	for {
		if _, ok := r.types[id]; !ok {
			return id
		}
		id++
	}
}

// Put inserts or replaces t under t.ID. Storage backends use it to rebuild a
// registry on load.
func (r *Registry) Put(t Type) {
	r.types[t.ID] = t
}

// Rename replaces the name of id. Unknown ids are ignored.
func (r *Registry) Rename(id ID, name string) {
	t, ok := r.types[id]
	if !ok {
		return
	}
	t.Name = name
	r.types[id] = t
}

// Delete removes id. Records referring to it are left in the log as orphans.
func (r *Registry) Delete(id ID) {
	delete(r.types, id)
}

// Get returns the type registered under id.
func (r *Registry) Get(id ID) (Type, bool) {
	t, ok := r.types[id]
	return t, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.types[id]
	return ok
}

// List returns all types in ascending id order.
func (r *Registry) List() []Type {
	out := make([]Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	return len(r.types)
}

// MarshalJSON encodes the registry as {"<id>": {"id": <id>, "name": ...}}.
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.types)
}

// UnmarshalJSON decodes the registry document. Each entry's id must match its
// key.
func (r *Registry) UnmarshalJSON(data []byte) error {
	var types map[ID]Type
	if err := json.Unmarshal(data, &types); err != nil {
		return err
	}
	if types == nil {
		types = make(map[ID]Type)
	}
	for key, t := range types {
		if key != t.ID {
			return fmt.Errorf("%w: key %d, id %d", ErrIDMismatch, key, t.ID)
		}
	}
	r.types = types
	return nil
}
