package viz

import (
	"github.com/kws/galaxy/internal/rotation"
	"github.com/kws/galaxy/internal/vec"
)

// Projector maps world-space positions onto a canvas through a view
// rotation and an orthographic drop of the depth axis.
type Projector struct {
	view  rotation.Matrix
	scale float64 // world units spanned by the canvas width
}

func NewProjector(scale float64) *Projector {
	return &Projector{view: rotation.Identity(), scale: scale}
}

// Rotate composes an additional view rotation on top of the current one.
func (p *Projector) Rotate(dx, dy float64) {
	p.view = rotation.FromEuler(dx, dy, 0).Mul(p.view)
}

func (p *Projector) ResetView() { p.view = rotation.Identity() }

func (p *Projector) Zoom(factor float64) {
	if factor > 0 {
		p.scale /= factor
	}
}

// Project returns sub-pixel canvas coordinates for a world position, with
// ok=false when the point falls outside the canvas.
func (p *Projector) Project(world vec.Vector, c *Canvas) (int, int, bool) {
	v := p.view.Transform(world)

	spanX := float64(c.Width * 2)
	spanY := float64(c.Height * 4)

	// Terminal cells are roughly twice as tall as wide; scale y by the
	// sub-pixel aspect so circles look circular.
	x := int(spanX/2 + v.X/p.scale*spanX)
	y := int(spanY/2 - v.Y/p.scale*spanX/2)

	if x < 0 || y < 0 || x >= int(spanX) || y >= int(spanY) {
		return 0, 0, false
	}
	return x, y, true
}
