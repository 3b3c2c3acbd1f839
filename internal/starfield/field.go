// Package starfield generates and animates the hero background stars.
package starfield

import (
	"math"
	"math/rand/v2"

	"github.com/Zachkp/portfolio/internal/theme"
)

const (
	// DefaultCount is the number of stars in the hero background.
	DefaultCount = 80
	// MaxCount bounds client requested fields.
	MaxCount = 500

	spread = 40.0

	rotateX = 0.0005
	rotateY = 0.001

	cameraZ   = 5.0
	fovDegree = 75.0
	nearPlane = 0.1
	farPlane  = 1000.0
)

// Star is one point of light. Brightness is a grey level in [0,1).
type Star struct {
	X, Y, Z    float64
	Brightness float64
}

// Field is a rotating cloud of stars.
type Field struct {
	Stars []Star
	RotX  float64
	RotY  float64
}

// Generate scatters count stars in a cube centred on the origin.
func Generate(count int, rng *rand.Rand) *Field {
	if count < 0 {
		count = 0
	}
	f := &Field{Stars: make([]Star, count)}
	for i := range f.Stars {
		f.Stars[i] = Star{
			X:          (rng.Float64() - 0.5) * spread,
			Y:          (rng.Float64() - 0.5) * spread,
			Z:          (rng.Float64() - 0.5) * spread,
			Brightness: theme.InitialBand.At(rng.Float64()),
		}
	}
	return f
}

// Recolor re-rolls every star's brightness for the theme.
func (f *Field) Recolor(t theme.Theme, rng *rand.Rand) {
	band := t.StarBand()
	for i := range f.Stars {
		f.Stars[i].Brightness = band.At(rng.Float64())
	}
}

// Advance rotates the field by one animation frame.
func (f *Field) Advance() {
	f.RotX += rotateX
	f.RotY += rotateY
}

// Point is a star projected onto a width x height grid.
type Point struct {
	X, Y       int
	Brightness float64
}

// Project maps the visible stars onto the viewport through a perspective
// camera sitting on the z axis.
func (f *Field) Project(width, height int) []Point {
	if width <= 0 || height <= 0 {
		return nil
	}
	aspect := float64(width) / float64(height)
	focal := 1 / math.Tan(fovDegree*math.Pi/360)

	sinX, cosX := math.Sincos(f.RotX)
	sinY, cosY := math.Sincos(f.RotY)

	points := make([]Point, 0, len(f.Stars))
	for _, s := range f.Stars {
		// yaw then pitch
		x := s.X*cosY + s.Z*sinY
		z := -s.X*sinY + s.Z*cosY
		y := s.Y*cosX - z*sinX
		z = s.Y*sinX + z*cosX

		depth := cameraZ - z
		if depth < nearPlane || depth > farPlane {
			continue
		}
		ndcX := x * focal / (aspect * depth)
		ndcY := y * focal / depth
		if ndcX < -1 || ndcX >= 1 || ndcY <= -1 || ndcY > 1 {
			continue
		}
		points = append(points, Point{
			X:          int((ndcX + 1) / 2 * float64(width)),
			Y:          int((1 - ndcY) / 2 * float64(height)),
			Brightness: s.Brightness,
		})
	}
	return points
}
