// Package gizmo batches debug overlay lines and draws them in one GL
// call per frame.
package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/physview/pkg/overlay"
)

// floatsPerVertex is position (3) plus RGBA color (4).
const floatsPerVertex = 7

// Batch accumulates line vertices for the current frame. It implements
// overlay.LineSink and draws exactly what it is handed: filtering and
// coloring already happened upstream.
type Batch struct {
	verts []float32
}

// NewBatch creates an empty line batch.
func NewBatch() *Batch {
	return &Batch{}
}

// DrawLine appends one segment. Colors arrive as HSLA and are stored as
// RGBA, which is what the shader consumes.
func (bt *Batch) DrawLine(_ overlay.Object, a, b mgl32.Vec3, color overlay.Color) {
	r, g, bl, al := color.RGBA()
	bt.verts = append(bt.verts,
		a.X(), a.Y(), a.Z(), r, g, bl, al,
		b.X(), b.Y(), b.Z(), r, g, bl, al,
	)
}

// Len returns the number of batched segments.
func (bt *Batch) Len() int {
	return len(bt.verts) / (2 * floatsPerVertex)
}

// Reset clears the batch, keeping capacity for the next frame.
func (bt *Batch) Reset() {
	bt.verts = bt.verts[:0]
}
