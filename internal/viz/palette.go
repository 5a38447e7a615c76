package viz

import "github.com/lucasb-eyer/go-colorful"

// goldenAngle spaces hues so neighboring galaxies stay distinguishable
// regardless of how many there are.
const goldenAngle = 137.508

// Palette is the display side-channel: colors keyed by galaxy index, kept
// out of the physics entities entirely.
type Palette struct {
	colors map[int]colorful.Color
}

func NewPalette() *Palette {
	return &Palette{colors: make(map[int]colorful.Color)}
}

// GalaxyColor returns a stable color for the galaxy at index i, assigning
// one lazily on first use.
func (p *Palette) GalaxyColor(i int) colorful.Color {
	if c, ok := p.colors[i]; ok {
		return c
	}
	hue := float64(i) * goldenAngle
	for hue >= 360 {
		hue -= 360
	}
	c := colorful.Hsv(hue, 0.65, 0.95)
	p.colors[i] = c
	return c
}

// Hex returns the galaxy color as "#rrggbb" for terminal and SVG use.
func (p *Palette) Hex(i int) string {
	return p.GalaxyColor(i).Hex()
}
