package render

import (
	"math"

	"github.com/iburimskiy/solar-explorer/internal/sim"
)

// Pick resolves a screen point to a body index, or -1 for no hit. Bodies are
// tested in catalog order and the first hit wins, so overlaps resolve the
// same way every frame. The test always runs against the live view and the
// given snapshot; nothing is cached, since pan, zoom and time all move the
// projected positions continuously.
func Pick(v *View, bodies []sim.Body, frame sim.Snapshot, px, py float64) int {
	for i := range frame.Bodies {
		if i >= len(bodies) {
			break
		}
		sx, sy := v.Project(frame.Bodies[i].X, frame.Bodies[i].Y, frame.Bodies[i].Z)
		if math.Hypot(px-sx, py-sy) <= v.ScreenRadius(bodies[i].Radius) {
			return i
		}
	}
	return -1
}
