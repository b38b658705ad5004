// Package render maps kinematic state to pixels: view state, the pseudo-3D
// projection, depth ordering, hit testing, sphere shading and the scene
// drawing itself.
package render

import "github.com/iburimskiy/solar-explorer/internal/config"

// View is the session-scoped render state: zoom, pan (as a movable projection
// center) and the visibility toggles. It is owned by the render goroutine and
// never touched by the scheduler.
type View struct {
	Zoom             float64
	CenterX, CenterY float64

	ShowOrbits     bool
	ShowNames      bool
	ShowSatellites bool
	ThreeD         bool

	homeZoom float64
	homeX    float64
	homeY    float64
}

// NewView returns a view centered at (cx, cy) with the given initial zoom.
func NewView(cx, cy, zoom float64) *View {
	v := &View{
		CenterX: cx, CenterY: cy,
		ShowOrbits: true, ShowNames: true, ShowSatellites: true, ThreeD: true,
		homeX: cx, homeY: cy,
	}
	v.homeZoom = clampZoom(zoom)
	v.Zoom = v.homeZoom
	return v
}

func clampZoom(z float64) float64 {
	if z < config.MinZoom {
		return config.MinZoom
	}
	if z > config.MaxZoom {
		return config.MaxZoom
	}
	return z
}

// SetZoom sets the zoom factor, clamped to the positive legal range. A zero
// or negative factor would degenerate the projection and is clamped up.
func (v *View) SetZoom(z float64) {
	v.Zoom = clampZoom(z)
}

// ZoomBy multiplies the zoom factor, clamped.
func (v *View) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	v.Zoom = clampZoom(v.Zoom * factor)
}

// Pan shifts the projection center by a screen-space delta.
func (v *View) Pan(dx, dy float64) {
	v.CenterX += dx
	v.CenterY += dy
}

// Reset restores zoom and pan to their startup values. Toggles are left as
// the user set them.
func (v *View) Reset() {
	v.Zoom = v.homeZoom
	v.CenterX = v.homeX
	v.CenterY = v.homeY
}
