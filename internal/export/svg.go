package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/kws/galaxy/internal/body"
	"github.com/kws/galaxy/internal/viz"
)

// SnapshotSVG renders the current star positions as an SVG scatter, one
// dot per star colored by owning galaxy, fitted to the given pixel size.
// The x/y plane is drawn; depth is dropped.
func SnapshotSVG(galaxies []*body.Galaxy, palette *viz.Palette, width, height int) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)

	body.AllStars(galaxies, func(s *body.Star, _ *body.Galaxy, _ int) {
		minX = math.Min(minX, s.Position.X)
		maxX = math.Max(maxX, s.Position.X)
		minY = math.Min(minY, s.Position.Y)
		maxY = math.Max(maxY, s.Position.Y)
	})

	if minX > maxX {
		return ""
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	const margin = 10.0
	sx := (float64(width) - 2*margin) / spanX
	sy := (float64(height) - 2*margin) / spanY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a12"/>
`, width, height, width, height))

	for i := range galaxies {
		sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", palette.Hex(i)))
		for _, s := range galaxies[i].Stars {
			cx := margin + (s.Position.X-minX)*sx
			cy := float64(height) - margin - (s.Position.Y-minY)*sy
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="0.8"/>
`, cx, cy))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
