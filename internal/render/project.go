package render

import (
	"math"
	"sort"

	"github.com/iburimskiy/solar-explorer/internal/sim"
)

// DepthFactor controls how strongly a body's z coordinate offsets it
// vertically in 3D mode.
const DepthFactor = 0.5

// Project maps a simulation-space position to screen coordinates. In 3D mode
// the z coordinate pushes the body down-screen, scaled by DepthFactor.
func (v *View) Project(x, y, z float64) (sx, sy float64) {
	sx = v.CenterX + x*v.Zoom
	sy = v.CenterY + y*v.Zoom
	if v.ThreeD {
		sy += z * DepthFactor * v.Zoom
	}
	return sx, sy
}

// ScreenRadius scales a display radius by the current zoom.
func (v *View) ScreenRadius(r float64) float64 {
	return r * v.Zoom
}

// DrawOrder returns body indexes in paint order. In 3D mode that is ascending
// z (far to near, painter's algorithm) with catalog order breaking ties; in
// 2D mode it is catalog order unchanged.
func DrawOrder(bodies []sim.BodyPos, threeD bool) []int {
	order := make([]int, len(bodies))
	for i := range order {
		order[i] = i
	}
	if threeD {
		sort.SliceStable(order, func(a, b int) bool {
			return bodies[order[a]].Z < bodies[order[b]].Z
		})
	}
	return order
}

// OrbitRadii returns the horizontal and vertical screen radii of a body's
// orbit guide. In 3D mode the vertical radius is flattened by the cosine of
// the orbital inclination; in 2D mode the guide is a circle.
func (v *View) OrbitRadii(distance, inclinationDeg float64) (rx, ry float64) {
	rx = distance * v.Zoom
	ry = rx
	if v.ThreeD {
		ry = rx * math.Cos(inclinationDeg*math.Pi/180)
	}
	return rx, ry
}
