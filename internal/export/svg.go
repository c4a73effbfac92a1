package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/tweeny/internal/easing"
)

type Point struct {
	X, Y float64
}

// SampleFormula evaluates f over a unit tween (start 0, delta 1, duration 1s)
// at samples+1 evenly spaced times. X is the time fraction.
func SampleFormula(f easing.Formula, samples int) []Point {
	if samples < 1 {
		samples = 1
	}
	const d = 1000.0
	points := make([]Point, 0, samples+1)
	for i := 0; i <= samples; i++ {
		x := float64(i) / float64(samples)
		points = append(points, Point{X: x, Y: f(x*d, 0, 1, d)})
	}
	return points
}

// CurveSVG draws points as a single polyline scaled to width x height.
func CurveSVG(points []Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
