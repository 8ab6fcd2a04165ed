package overlay

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// LineSink receives one line segment per call, already filtered, colored
// and scaled to display units. Sinks draw immediately or batch for the
// current frame; they keep no state across frames.
type LineSink interface {
	DrawLine(obj Object, a, b mgl32.Vec3, color Color)
}

// Point2 lifts a 2D physics point into the sink's 3D space with z=0.
// 2D and 3D emitters may share a single frame pass.
func Point2(x, y float32) mgl32.Vec3 {
	return mgl32.Vec3{x, y, 0}
}

// Source is the physics-side debug traversal. It enumerates drawable
// objects, decomposes them into line segments, picks a default color per
// segment from style, skips categories absent from mode, and calls the
// sink once per segment with physics-space endpoints.
type Source interface {
	RenderDebug(sink LineSink, style *Style, mode Mode)
}

// Renderer drives one overlay pass per frame. It owns no scene state:
// the physics traversal and the attribute lookups are injected, and the
// Context is shared with whatever tooling mutates it between frames.
type Renderer struct {
	// Context is read once per pass. Must not be nil.
	Context *Context
	// Scale is the display-units-per-physics-unit factor applied to
	// every forwarded coordinate. Values <= 0 are treated as 1.
	Scale float32
	// Identity, Visible and Colors back the per-frame policy.
	// Context.Global is combined with them on each pass.
	Identity IdentityResolver
	Visible  VisibleSet
	Colors   ColorTable
	// Log, when set, emits per-pass segment counts at debug level.
	Log *zap.Logger

	warnedScale bool
}

// NewRenderer wires a renderer. Any of resolver, visible, colors may be
// nil when the host attaches no such data.
func NewRenderer(ctx *Context, scale float32, resolver IdentityResolver, visible VisibleSet, colors ColorTable) *Renderer {
	return &Renderer{
		Context:  ctx,
		Scale:    scale,
		Identity: resolver,
		Visible:  visible,
		Colors:   colors,
	}
}

// RenderScene runs one overlay pass: early-out when disabled, then the
// source traversal with a policy-and-scale wrapper around sink.
//
// Style.RigidBodyAxesLength is expressed in display units but the source
// works in physics units, so it is divided by the scale for the duration
// of the traversal and restored afterward on every exit path. Call after
// transform propagation and before final rendering, from the thread that
// owns the Context.
func (r *Renderer) RenderScene(src Source, sink LineSink) {
	ctx := r.Context
	if ctx == nil || !ctx.Enabled {
		return
	}

	scale := r.Scale
	if scale <= 0 {
		if !r.warnedScale && r.Log != nil {
			r.Log.Warn("overlay scale must be positive, using 1", zap.Float32("scale", r.Scale))
		}
		r.warnedScale = true
		scale = 1
	}

	wrapped := &policySink{
		policy: Policy{
			Global:   ctx.Global,
			Identity: r.Identity,
			Visible:  r.Visible,
			Colors:   r.Colors,
		},
		scale: scale,
		out:   sink,
	}

	axesLength := ctx.Style.RigidBodyAxesLength
	ctx.Style.RigidBodyAxesLength = axesLength / scale
	defer func() {
		ctx.Style.RigidBodyAxesLength = axesLength
	}()

	src.RenderDebug(wrapped, &ctx.Style, ctx.Mode)

	if r.Log != nil {
		r.Log.Debug("overlay pass",
			zap.Int("drawn", wrapped.drawn),
			zap.Int("culled", wrapped.culled),
		)
	}
}

// policySink filters, recolors and scales segments before forwarding.
type policySink struct {
	policy Policy
	scale  float32
	out    LineSink

	drawn  int
	culled int
}

func (s *policySink) DrawLine(obj Object, a, b mgl32.Vec3, def Color) {
	visible, color := s.policy.Resolve(obj, def)
	if !visible {
		s.culled++
		return
	}
	s.out.DrawLine(obj, a.Mul(s.scale), b.Mul(s.scale), color)
	s.drawn++
}
