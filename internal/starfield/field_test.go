package starfield

import (
	"math/rand/v2"
	"testing"

	"github.com/Zachkp/portfolio/internal/theme"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestGenerate(t *testing.T) {
	f := Generate(DefaultCount, seeded())
	if len(f.Stars) != DefaultCount {
		t.Fatalf("stars = %d, want %d", len(f.Stars), DefaultCount)
	}
	for i, s := range f.Stars {
		for _, c := range []float64{s.X, s.Y, s.Z} {
			if c < -20 || c >= 20 {
				t.Fatalf("star %d coordinate %v outside [-20, 20)", i, c)
			}
		}
		if s.Brightness < 0.3 || s.Brightness >= 1 {
			t.Fatalf("star %d brightness %v outside initial band", i, s.Brightness)
		}
	}
	if got := Generate(-3, seeded()); len(got.Stars) != 0 {
		t.Fatalf("Generate(-3) stars = %d, want 0", len(got.Stars))
	}
}

func TestRecolor(t *testing.T) {
	f := Generate(50, seeded())
	for _, th := range []theme.Theme{theme.Light, theme.Dark} {
		f.Recolor(th, seeded())
		band := th.StarBand()
		for i, s := range f.Stars {
			if s.Brightness < band.Min || s.Brightness >= band.Max {
				t.Fatalf("%s star %d brightness %v outside %+v", th, i, s.Brightness, band)
			}
		}
	}
}

func TestAdvance(t *testing.T) {
	f := Generate(1, seeded())
	f.Advance()
	f.Advance()
	if f.RotX != 2*rotateX || f.RotY != 2*rotateY {
		t.Fatalf("rotation = (%v, %v), want (%v, %v)", f.RotX, f.RotY, 2*rotateX, 2*rotateY)
	}
}

func TestProject(t *testing.T) {
	f := &Field{Stars: []Star{
		{X: 0, Y: 0, Z: 0, Brightness: 0.5},
		{X: 0, Y: 0, Z: 10, Brightness: 0.9},
		{X: 500, Y: 0, Z: 0, Brightness: 0.9},
	}}
	points := f.Project(80, 24)
	if len(points) != 1 {
		t.Fatalf("points = %d, want 1", len(points))
	}
	if points[0].X != 40 || points[0].Y != 12 {
		t.Fatalf("centre star at (%d, %d), want (40, 12)", points[0].X, points[0].Y)
	}
	if f.Project(0, 10) != nil {
		t.Fatal("Project(0, 10) returned points")
	}
}
