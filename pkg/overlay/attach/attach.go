// Package attach keeps per-entity debug-render attachments: visibility
// opt-in markers and color overrides. The overlay policy only reads the
// store; the entries follow each entity's own lifecycle.
package attach

import (
	"github.com/Faultbox/physview/pkg/overlay"
)

// Store is a map-backed attachment registry. It implements
// overlay.VisibleSet and overlay.ColorTable.
//
// Not safe for mutation concurrent with a frame pass; mutate between
// frames, as entities spawn and despawn.
type Store struct {
	visible map[overlay.EntityID]struct{}
	colors  map[overlay.EntityID]overlay.Color
}

// NewStore creates an empty attachment store.
func NewStore() *Store {
	return &Store{
		visible: make(map[overlay.EntityID]struct{}),
		colors:  make(map[overlay.EntityID]overlay.Color),
	}
}

// MarkVisible opts the entity in to debug rendering when the overlay is
// not in global mode.
func (s *Store) MarkVisible(id overlay.EntityID) {
	s.visible[id] = struct{}{}
}

// ClearVisible removes the entity's opt-in marker.
func (s *Store) ClearVisible(id overlay.EntityID) {
	delete(s.visible, id)
}

// Contains reports whether the entity is opted in.
func (s *Store) Contains(id overlay.EntityID) bool {
	_, ok := s.visible[id]
	return ok
}

// SetColor overrides the entity's collider color.
func (s *Store) SetColor(id overlay.EntityID, c overlay.Color) {
	s.colors[id] = c
}

// ClearColor removes the entity's color override.
func (s *Store) ClearColor(id overlay.EntityID) {
	delete(s.colors, id)
}

// Lookup returns the entity's color override, if any.
func (s *Store) Lookup(id overlay.EntityID) (overlay.Color, bool) {
	c, ok := s.colors[id]
	return c, ok
}

// Remove drops every attachment for the entity. Call when the entity
// despawns.
func (s *Store) Remove(id overlay.EntityID) {
	delete(s.visible, id)
	delete(s.colors, id)
}

// Len returns the number of entities carrying at least one attachment.
func (s *Store) Len() int {
	n := len(s.colors)
	for id := range s.visible {
		if _, ok := s.colors[id]; !ok {
			n++
		}
	}
	return n
}

// Reset drops all attachments.
func (s *Store) Reset() {
	s.visible = make(map[overlay.EntityID]struct{})
	s.colors = make(map[overlay.EntityID]overlay.Color)
}
