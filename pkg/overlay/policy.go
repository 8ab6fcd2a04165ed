package overlay

// IdentityResolver recovers the entity identity a physics engine stored
// in a collider's user-data slot. The mapping must be stable for the
// collider's lifetime; a handle with no associated entity reports false.
type IdentityResolver interface {
	ResolveEntity(h ColliderHandle) (EntityID, bool)
}

// VisibleSet holds the entities explicitly opted in to debug rendering.
// Consulted only when the overlay is not in global mode.
type VisibleSet interface {
	Contains(id EntityID) bool
}

// ColorTable holds per-entity color overrides.
type ColorTable interface {
	Lookup(id EntityID) (Color, bool)
}

// Policy decides, for each drawable object, whether it is drawn and in
// what color. All lookups are read-only and valid for the current frame;
// Resolve is a pure function of the policy fields and store contents.
//
// Every lookup miss degrades to a default decision: an unresolvable
// collider is not visible (when not global) and keeps its default color.
// There is no error path.
type Policy struct {
	// Global makes every collider visible regardless of the set.
	Global bool
	// Identity maps collider handles to entities. Nil means no
	// collider can be resolved.
	Identity IdentityResolver
	// Visible is the per-entity opt-in set. Nil means empty.
	Visible VisibleSet
	// Colors is the per-entity override table. Nil means empty.
	Colors ColorTable
}

// ObjectVisible reports whether the object should be drawn this frame.
// Non-collider objects are always visible.
func (p Policy) ObjectVisible(obj Object) bool {
	if obj.Kind != KindCollider {
		return true
	}
	if p.Global {
		return true
	}
	if p.Identity == nil || p.Visible == nil {
		return false
	}
	id, ok := p.Identity.ResolveEntity(obj.Collider)
	if !ok {
		return false
	}
	return p.Visible.Contains(id)
}

// ObjectColor returns the color the object should be drawn in, given the
// default the traversal picked for it. Only colliders can be overridden.
func (p Policy) ObjectColor(obj Object, def Color) Color {
	if obj.Kind != KindCollider || p.Identity == nil || p.Colors == nil {
		return def
	}
	id, ok := p.Identity.ResolveEntity(obj.Collider)
	if !ok {
		return def
	}
	if c, ok := p.Colors.Lookup(id); ok {
		return c
	}
	return def
}

// Resolve combines the visibility and color decisions. When the object
// is not visible the default color is returned unchanged.
func (p Policy) Resolve(obj Object, def Color) (visible bool, color Color) {
	if !p.ObjectVisible(obj) {
		return false, def
	}
	return true, p.ObjectColor(obj, def)
}
