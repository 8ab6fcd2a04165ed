package overlay

// ColliderHandle is the physics engine's opaque handle for a collider.
type ColliderHandle uint64

// EntityID is the stable integer identifying the application-level entity
// associated with a physics object. It is typically recovered from the
// collider's user-data slot by an IdentityResolver.
type EntityID uint64

// Kind identifies what part of the physics scene a drawable object
// belongs to.
type Kind uint8

const (
	KindCollider Kind = iota
	KindRigidBody
	KindImpulseJoint
	KindMultibodyJoint
	KindContactPair
	KindColliderAABB
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindCollider:
		return "collider"
	case KindRigidBody:
		return "rigid-body"
	case KindImpulseJoint:
		return "impulse-joint"
	case KindMultibodyJoint:
		return "multibody-joint"
	case KindContactPair:
		return "contact-pair"
	case KindColliderAABB:
		return "collider-aabb"
	default:
		return "unknown"
	}
}

// Object is one drawable item enumerated by the physics debug traversal.
// Only colliders carry a handle that can be resolved to an entity; every
// other kind is always visible and always uses the source's default color.
type Object struct {
	Kind     Kind
	Collider ColliderHandle
}

// ColliderObject wraps a collider handle as a drawable object.
func ColliderObject(h ColliderHandle) Object {
	return Object{Kind: KindCollider, Collider: h}
}
