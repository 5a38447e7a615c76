package viz

import (
	"strings"
	"testing"

	"github.com/kws/galaxy/internal/vec"
)

func TestCanvas_SetAndString(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	if !c.IsSet(0, 0) {
		t.Error("sub-pixel (0,0) not set")
	}
	if c.IsSet(1, 0) {
		t.Error("sub-pixel (1,0) unexpectedly set")
	}

	s := c.String()
	if !strings.ContainsRune(s, 0x2801) {
		t.Errorf("String() = %q, want dot 1 braille cell", s)
	}
}

func TestCanvas_OutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)

	// Must not panic or wrap.
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(100, 0)
	c.Set(0, 100)

	if c.String() != strings.Repeat("⠀⠀\n", 2) {
		t.Error("out-of-bounds Set modified the canvas")
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Set(1, 1)
	c.Clear()
	if c.IsSet(1, 1) {
		t.Error("Clear left a pixel set")
	}
}

func TestProjector_Center(t *testing.T) {
	c := NewCanvas(40, 20)
	p := NewProjector(10)

	x, y, ok := p.Project(vec.Zero(), c)
	if !ok {
		t.Fatal("origin projected off-canvas")
	}
	if x != 40 || y != 40 {
		t.Errorf("origin projected to (%d, %d), want canvas center (40, 40)", x, y)
	}
}

func TestProjector_OffCanvas(t *testing.T) {
	c := NewCanvas(40, 20)
	p := NewProjector(10)

	if _, _, ok := p.Project(vec.Vector{X: 100}, c); ok {
		t.Error("far point should fall off-canvas")
	}
}

func TestProjector_RotateMovesPoints(t *testing.T) {
	c := NewCanvas(40, 20)
	p := NewProjector(10)

	x0, y0, _ := p.Project(vec.Vector{X: 2, Y: 1}, c)
	p.Rotate(0.5, 0.3)
	x1, y1, _ := p.Project(vec.Vector{X: 2, Y: 1}, c)

	if x0 == x1 && y0 == y1 {
		t.Error("rotation did not move a projected point")
	}

	p.ResetView()
	x2, y2, _ := p.Project(vec.Vector{X: 2, Y: 1}, c)
	if x2 != x0 || y2 != y0 {
		t.Error("ResetView did not restore the projection")
	}
}

func TestPalette_StableAndDistinct(t *testing.T) {
	p := NewPalette()

	a := p.GalaxyColor(0)
	b := p.GalaxyColor(1)
	if a == b {
		t.Error("adjacent galaxies share a color")
	}
	if p.GalaxyColor(0) != a {
		t.Error("color for index 0 changed between calls")
	}

	hex := p.Hex(0)
	if len(hex) != 7 || hex[0] != '#' {
		t.Errorf("Hex() = %q, want #rrggbb", hex)
	}
}
