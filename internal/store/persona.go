package store

import (
	"encoding/json"
	"errors"

	"github.com/gintama1018/geminimind/internal/persona"
)

// ErrDefaultPersona is returned when a caller tries to delete a built-in
// persona. Protection lives here, in the store, not in the caller.
var ErrDefaultPersona = errors.New("built-in personas cannot be deleted")

// PersonaRepo persists the persona collection as one JSON-serialized list
// under a single storage key, in insertion order.
//
// List seeds the three built-ins on first access and never fails: corrupt
// or unavailable storage degrades to the built-ins for the session.
// Add and Update are best-effort writes; id uniqueness for Add is the
// caller's responsibility.
type PersonaRepo struct {
	kv kv
}

// List returns the persisted personas in insertion order, seeding the
// built-ins if nothing is persisted yet. Seeding happens at most once:
// a subsequent List reads the stored collection.
func (r *PersonaRepo) List() []persona.Persona {
	raw, ok := r.kv.get(keyPersonas)
	if !ok {
		defaults := persona.Defaults()
		r.save(defaults)
		return defaults
	}

	var personas []persona.Persona
	if err := json.Unmarshal([]byte(raw), &personas); err != nil {
		warnf("corrupt persona collection, using built-ins: %v", err)
		return persona.Defaults()
	}
	return personas
}

// Add appends a persona to the collection.
func (r *PersonaRepo) Add(p persona.Persona) {
	r.save(append(r.List(), p))
}

// Update replaces the persona whose id matches. No-op when absent.
func (r *PersonaRepo) Update(p persona.Persona) {
	personas := r.List()
	for i := range personas {
		if personas[i].ID == p.ID {
			personas[i] = p
			r.save(personas)
			return
		}
	}
}

// Delete removes the persona with the given id. Absent ids are a no-op.
// Built-ins are refused with ErrDefaultPersona.
func (r *PersonaRepo) Delete(id string) error {
	personas := r.List()
	for i, p := range personas {
		if p.ID != id {
			continue
		}
		if p.IsDefault {
			return ErrDefaultPersona
		}
		r.save(append(personas[:i], personas[i+1:]...))
		return nil
	}
	return nil
}

// ResetToDefaults overwrites the collection with the three built-ins,
// discarding all user-created personas irreversibly.
func (r *PersonaRepo) ResetToDefaults() {
	r.save(persona.Defaults())
}

func (r *PersonaRepo) save(personas []persona.Persona) {
	raw, err := json.Marshal(personas)
	if err != nil {
		warnf("encode persona collection: %v", err)
		return
	}
	if err := r.kv.set(keyPersonas, string(raw)); err != nil {
		warnf("save persona collection: %v", err)
	}
}
