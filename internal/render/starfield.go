package render

import "math/rand"

// StarfieldSeed is the fixed seed for star placement. Every full redraw
// reseeds with this constant, so the field is identical frame to frame and
// reproducible for a given canvas size.
const StarfieldSeed = 42

// Star is one background star in screen space.
type Star struct {
	X, Y       float64
	Size       float64
	Brightness float64 // 0..1, toward the background color at the low end
}

// Starfield places n stars across a w-by-h canvas deterministically.
func Starfield(w, h, n int) []Star {
	rng := rand.New(rand.NewSource(StarfieldSeed))
	stars := make([]Star, n)
	sizes := []float64{1, 1, 1, 2} // mostly small stars
	for i := range stars {
		stars[i] = Star{
			X:          float64(rng.Intn(w + 1)),
			Y:          float64(rng.Intn(h + 1)),
			Brightness: 0.3 + 0.7*rng.Float64(),
			Size:       sizes[rng.Intn(len(sizes))],
		}
	}
	return stars
}
