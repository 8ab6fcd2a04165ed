package overlay

import (
	"fmt"
	"strings"
)

// Mode selects which parts of the physics scene are rendered.
type Mode uint32

const (
	ModeColliderShapes Mode = 1 << iota
	ModeRigidBodyAxes
	ModeImpulseJoints
	ModeMultibodyJoints
	ModeSolverContacts
	ModeContactPairs
	ModeColliderAABBs

	// ModeJoints enables both joint categories.
	ModeJoints = ModeImpulseJoints | ModeMultibodyJoints

	// ModeAll renders everything.
	ModeAll = ModeColliderShapes | ModeRigidBodyAxes | ModeJoints |
		ModeSolverContacts | ModeContactPairs | ModeColliderAABBs
)

// Has reports whether every bit of flag is set.
func (m Mode) Has(flag Mode) bool {
	return m&flag == flag
}

var modeNames = []struct {
	bit  Mode
	name string
}{
	{ModeColliderShapes, "collider-shapes"},
	{ModeRigidBodyAxes, "rigid-body-axes"},
	{ModeImpulseJoints, "impulse-joints"},
	{ModeMultibodyJoints, "multibody-joints"},
	{ModeSolverContacts, "solver-contacts"},
	{ModeContactPairs, "contact-pairs"},
	{ModeColliderAABBs, "collider-aabbs"},
}

// ParseMode builds a Mode from category names. The name "all" selects
// every category; an empty list yields ModeAll, since rendering nothing
// is never what a config file means by omitting the field.
func ParseMode(names []string) (Mode, error) {
	if len(names) == 0 {
		return ModeAll, nil
	}
	var m Mode
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "all" {
			return ModeAll, nil
		}
		found := false
		for _, entry := range modeNames {
			if entry.name == name {
				m |= entry.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown render mode %q", raw)
		}
	}
	return m, nil
}

// Strings returns the names of the enabled categories.
func (m Mode) Strings() []string {
	var out []string
	for _, entry := range modeNames {
		if m.Has(entry.bit) {
			out = append(out, entry.name)
		}
	}
	return out
}

// String returns a comma-joined list of enabled categories.
func (m Mode) String() string {
	if m == 0 {
		return "none"
	}
	return strings.Join(m.Strings(), ",")
}
