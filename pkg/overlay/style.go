package overlay

// Style controls the default coloring rules and shape detail the physics
// debug traversal uses when emitting line segments.
type Style struct {
	// Subdivisions is the segment count for curved shape outlines.
	Subdivisions uint32
	// BorderSubdivisions is the segment count for rounded shape borders.
	BorderSubdivisions uint32

	ColliderDynamicColor    Color
	ColliderFixedColor      Color
	ColliderKinematicColor  Color
	ColliderParentlessColor Color

	// SleepColorMultiplier and DisabledColorMultiplier are applied
	// component-wise to a collider color when its body is asleep or
	// the collider is disabled.
	SleepColorMultiplier    Color
	DisabledColorMultiplier Color

	ImpulseJointAnchorColor       Color
	ImpulseJointSeparationColor   Color
	MultibodyJointAnchorColor     Color
	MultibodyJointSeparationColor Color

	ContactDepthColor  Color
	ContactNormalColor Color
	ColliderAABBColor  Color

	// RigidBodyAxesLength is the rendered length of rigid-body
	// orientation axes, in display units. The frame pass converts it
	// to physics units for the duration of the traversal.
	RigidBodyAxesLength float32
	// ContactNormalLength is the rendered length of contact normals,
	// in physics units.
	ContactNormalLength float32
}

// DefaultStyle returns the style used for 3D scenes.
func DefaultStyle() Style {
	return Style{
		Subdivisions:       20,
		BorderSubdivisions: 20,

		ColliderDynamicColor:    HSLA(340, 1.0, 0.3, 1.0),
		ColliderFixedColor:      HSLA(30, 1.0, 0.4, 1.0),
		ColliderKinematicColor:  HSLA(20, 1.0, 0.3, 1.0),
		ColliderParentlessColor: HSLA(30, 1.0, 0.4, 1.0),

		SleepColorMultiplier:    Color{1.0, 1.0, 0.2, 1.0},
		DisabledColorMultiplier: Color{0.0, 1.0, 0.8, 1.0},

		ImpulseJointAnchorColor:       HSLA(240, 0.5, 0.4, 1.0),
		ImpulseJointSeparationColor:   HSLA(0, 0.5, 0.4, 1.0),
		MultibodyJointAnchorColor:     HSLA(300, 1.0, 0.4, 1.0),
		MultibodyJointSeparationColor: HSLA(0, 1.0, 0.4, 1.0),

		ContactDepthColor:  HSLA(120, 1.0, 0.4, 1.0),
		ContactNormalColor: HSLA(0, 1.0, 1.0, 1.0),
		ColliderAABBColor:  HSLA(124, 1.0, 0.4, 1.0),

		RigidBodyAxesLength: 0.5,
		ContactNormalLength: 0.3,
	}
}

// DefaultStyle2D returns the style used for 2D scenes, where display
// units are pixels and the body axes need to be long enough to see.
func DefaultStyle2D() Style {
	s := DefaultStyle()
	s.RigidBodyAxesLength = 20.0
	return s
}
