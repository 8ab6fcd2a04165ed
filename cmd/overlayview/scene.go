package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/physview/pkg/overlay"
)

// bodyKind mirrors the body type a collider is attached to, which picks
// its default color from the style.
type bodyKind uint8

const (
	bodyDynamic bodyKind = iota
	bodyFixed
	bodyKinematic
)

// segment is one line in physics space.
type segment struct {
	a, b mgl32.Vec3
}

// sceneCollider is a collider snapshot: handle, body kind and outline.
type sceneCollider struct {
	handle  overlay.ColliderHandle
	body    bodyKind
	center  mgl32.Vec3
	outline []segment
	aabb    [2]mgl32.Vec3 // min, max
}

// sceneContact is one contact point with its normal.
type sceneContact struct {
	point  mgl32.Vec3
	normal mgl32.Vec3
	depth  float32
}

// Scene is a canned snapshot of a small 2D physics world, precomputed in
// physics units (meters). There is no simulation here: the outlines are
// exactly the line sets a debug traversal would emit for it.
type Scene struct {
	colliders []sceneCollider
	// axes are drawn at each dynamic body origin.
	axes []mgl32.Vec3
	// one impulse joint connecting the two crates.
	jointAnchors [2]mgl32.Vec3
	contacts     []sceneContact
}

// Collider handles and the entities their user data resolves to.
const (
	handleGround overlay.ColliderHandle = 1
	handleCrateA overlay.ColliderHandle = 2
	handleCrateB overlay.ColliderHandle = 3
	handleBall   overlay.ColliderHandle = 4

	entityGround overlay.EntityID = 100
	entityCrateA overlay.EntityID = 101
	entityCrateB overlay.EntityID = 102
	entityBall   overlay.EntityID = 103
)

func buildScene() *Scene {
	s := &Scene{}

	// Ground: a long fixed slab.
	s.addBox(handleGround, bodyFixed, mgl32.Vec3{20, 2, 0}, 18, 1, 0)
	// Two dynamic crates, one tilted, joined by an impulse joint.
	s.addBox(handleCrateA, bodyDynamic, mgl32.Vec3{14, 6, 0}, 2, 2, 0)
	s.addBox(handleCrateB, bodyDynamic, mgl32.Vec3{22, 7, 0}, 2, 2, float32(math.Pi)/8)
	// A dynamic ball resting on the ground.
	s.addBall(handleBall, bodyDynamic, mgl32.Vec3{30, 4.5, 0}, 1.5)

	s.axes = []mgl32.Vec3{{14, 6, 0}, {22, 7, 0}, {30, 4.5, 0}}
	s.jointAnchors = [2]mgl32.Vec3{{14, 6, 0}, {22, 7, 0}}
	s.contacts = []sceneContact{
		{point: mgl32.Vec3{30, 3, 0}, normal: mgl32.Vec3{0, 1, 0}, depth: 0.02},
		{point: mgl32.Vec3{14, 4, 0}, normal: mgl32.Vec3{0, 1, 0}, depth: 0.01},
	}
	return s
}

func (s *Scene) addBox(h overlay.ColliderHandle, kind bodyKind, center mgl32.Vec3, hx, hy, angle float32) {
	cos := float32(math.Cos(float64(angle)))
	sin := float32(math.Sin(float64(angle)))
	local := [4][2]float32{{-hx, -hy}, {hx, -hy}, {hx, hy}, {-hx, hy}}

	var corners [4]mgl32.Vec3
	min := mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, 0}
	max := mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, 0}
	for i, p := range local {
		x := center.X() + p[0]*cos - p[1]*sin
		y := center.Y() + p[0]*sin + p[1]*cos
		corners[i] = overlay.Point2(x, y)
		min = mgl32.Vec3{minf(min.X(), x), minf(min.Y(), y), 0}
		max = mgl32.Vec3{maxf(max.X(), x), maxf(max.Y(), y), 0}
	}

	c := sceneCollider{handle: h, body: kind, center: center, aabb: [2]mgl32.Vec3{min, max}}
	for i := range corners {
		c.outline = append(c.outline, segment{corners[i], corners[(i+1)%4]})
	}
	s.colliders = append(s.colliders, c)
}

func (s *Scene) addBall(h overlay.ColliderHandle, kind bodyKind, center mgl32.Vec3, radius float32) {
	c := sceneCollider{
		handle: h,
		body:   kind,
		center: center,
		aabb: [2]mgl32.Vec3{
			{center.X() - radius, center.Y() - radius, 0},
			{center.X() + radius, center.Y() + radius, 0},
		},
	}
	// Outline subdivision is fixed at build time; the style's value is
	// for traversals that tessellate on the fly.
	const subdivisions = 24
	prev := overlay.Point2(center.X()+radius, center.Y())
	for i := 1; i <= subdivisions; i++ {
		t := float64(i) / subdivisions * 2 * math.Pi
		next := overlay.Point2(
			center.X()+radius*float32(math.Cos(t)),
			center.Y()+radius*float32(math.Sin(t)),
		)
		c.outline = append(c.outline, segment{prev, next})
		prev = next
	}
	s.colliders = append(s.colliders, c)
}

// RenderDebug emits the snapshot's line segments, honoring the mode
// flags and picking default colors from the style the way a physics
// debug traversal does.
func (s *Scene) RenderDebug(sink overlay.LineSink, style *overlay.Style, mode overlay.Mode) {
	if mode.Has(overlay.ModeColliderShapes) {
		for _, c := range s.colliders {
			color := colliderColor(style, c.body)
			obj := overlay.ColliderObject(c.handle)
			for _, seg := range c.outline {
				sink.DrawLine(obj, seg.a, seg.b, color)
			}
		}
	}

	if mode.Has(overlay.ModeColliderAABBs) {
		for _, c := range s.colliders {
			obj := overlay.Object{Kind: overlay.KindColliderAABB}
			min, max := c.aabb[0], c.aabb[1]
			corners := []mgl32.Vec3{
				{min.X(), min.Y(), 0}, {max.X(), min.Y(), 0},
				{max.X(), max.Y(), 0}, {min.X(), max.Y(), 0},
			}
			for i := range corners {
				sink.DrawLine(obj, corners[i], corners[(i+1)%4], style.ColliderAABBColor)
			}
		}
	}

	if mode.Has(overlay.ModeRigidBodyAxes) {
		obj := overlay.Object{Kind: overlay.KindRigidBody}
		l := style.RigidBodyAxesLength
		for _, origin := range s.axes {
			sink.DrawLine(obj, origin, origin.Add(mgl32.Vec3{l, 0, 0}), overlay.HSLA(0, 1, 0.5, 1))
			sink.DrawLine(obj, origin, origin.Add(mgl32.Vec3{0, l, 0}), overlay.HSLA(120, 1, 0.5, 1))
		}
	}

	if mode.Has(overlay.ModeImpulseJoints) {
		obj := overlay.Object{Kind: overlay.KindImpulseJoint}
		sink.DrawLine(obj, s.jointAnchors[0], s.jointAnchors[1], style.ImpulseJointAnchorColor)
	}

	if mode.Has(overlay.ModeContactPairs) {
		obj := overlay.Object{Kind: overlay.KindContactPair}
		for _, ct := range s.contacts {
			tip := ct.point.Add(ct.normal.Mul(style.ContactNormalLength))
			sink.DrawLine(obj, ct.point, tip, style.ContactNormalColor)
		}
	}
}

// userData returns the identity stored in the collider's user-data slot.
func (s *Scene) userData(h overlay.ColliderHandle) (uint64, bool) {
	switch h {
	case handleGround:
		return uint64(entityGround), true
	case handleCrateA:
		return uint64(entityCrateA), true
	case handleCrateB:
		return uint64(entityCrateB), true
	case handleBall:
		return uint64(entityBall), true
	default:
		return 0, false
	}
}

func colliderColor(style *overlay.Style, kind bodyKind) overlay.Color {
	switch kind {
	case bodyFixed:
		return style.ColliderFixedColor
	case bodyKinematic:
		return style.ColliderKinematicColor
	default:
		return style.ColliderDynamicColor
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
