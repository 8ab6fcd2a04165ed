package attach

import (
	"github.com/Faultbox/physview/pkg/overlay"
)

// ResolverFunc adapts a plain function to overlay.IdentityResolver.
type ResolverFunc func(h overlay.ColliderHandle) (overlay.EntityID, bool)

// ResolveEntity calls f.
func (f ResolverFunc) ResolveEntity(h overlay.ColliderHandle) (overlay.EntityID, bool) {
	return f(h)
}

// UserDataResolver builds a resolver from a host accessor that reads a
// collider's raw user-data slot. The entity identity is the slot value
// itself; no bit-packing is assumed beyond a stable round-trippable
// integer for the collider's lifetime.
func UserDataResolver(userData func(h overlay.ColliderHandle) (uint64, bool)) overlay.IdentityResolver {
	return ResolverFunc(func(h overlay.ColliderHandle) (overlay.EntityID, bool) {
		raw, ok := userData(h)
		if !ok {
			return 0, false
		}
		return overlay.EntityID(raw), true
	})
}

// StaticResolver is a fixed handle-to-entity mapping, handy for tests
// and canned scenes.
type StaticResolver map[overlay.ColliderHandle]overlay.EntityID

// ResolveEntity looks the handle up in the map.
func (m StaticResolver) ResolveEntity(h overlay.ColliderHandle) (overlay.EntityID, bool) {
	id, ok := m[h]
	return id, ok
}
