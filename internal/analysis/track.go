package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/orrery/internal/orrery"
)

// Circularity returns the mean distance of track points from the origin and
// the largest deviation from that mean.
func Circularity(track []orrery.Vec2) (mean, maxDev float64, err error) {
	if len(track) == 0 {
		return 0, 0, fmt.Errorf("%w: empty track", orrery.ErrEmptyTrace)
	}

	for _, p := range track {
		mean += math.Hypot(p.X, p.Y)
	}
	mean /= float64(len(track))

	for _, p := range track {
		maxDev = math.Max(maxDev, math.Abs(math.Hypot(p.X, p.Y)-mean))
	}
	return mean, maxDev, nil
}

// TrackToASCII plots points on a width x height grid with the origin marked.
func TrackToASCII(points []orrery.Vec2, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	// keep the origin in frame so the orbit center shows
	minX, maxX := 0.0, 0.0
	minY, maxY := 0.0, 0.0
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

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

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	cell := func(x, y float64) (int, int) {
		col := int((x - minX) / rangeX * float64(width-1))
		row := height - 1 - int((y-minY)/rangeY*float64(height-1))
		return row, col
	}

	for _, p := range points {
		row, col := cell(p.X, p.Y)
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	row, col := cell(0, 0)
	if row >= 0 && row < height && col >= 0 && col < width {
		canvas[row][col] = '+'
	}

	var sb strings.Builder
	for _, r := range canvas {
		sb.WriteString(string(r))
		sb.WriteRune('\n')
	}
	return sb.String()
}
