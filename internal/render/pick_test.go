package render

import (
	"testing"

	"github.com/iburimskiy/solar-explorer/internal/sim"
)

func pickFixture() ([]sim.Body, sim.Snapshot) {
	bodies := []sim.Body{
		{Name: "Mercury", Radius: 5},
		{Name: "Venus", Radius: 8},
		{Name: "Earth", Radius: 9},
	}
	frame := sim.Snapshot{Bodies: []sim.BodyPos{
		{X: 80, Y: 0, Z: 0},
		{X: 0, Y: 110, Z: 4},
		{X: -150, Y: 0, Z: 0},
	}}
	return bodies, frame
}

func TestPick_CenterAlwaysHits(t *testing.T) {
	bodies, frame := pickFixture()
	v := NewView(700, 400, 1.0)

	for i := range bodies {
		sx, sy := v.Project(frame.Bodies[i].X, frame.Bodies[i].Y, frame.Bodies[i].Z)
		if got := Pick(v, bodies, frame, sx, sy); got != i {
			t.Errorf("pick at %s center = %d want %d", bodies[i].Name, got, i)
		}
	}
}

func TestPick_EdgeAndMiss(t *testing.T) {
	bodies, frame := pickFixture()
	v := NewView(700, 400, 2.0)

	sx, sy := v.Project(80, 0, 0)
	r := v.ScreenRadius(5)
	if got := Pick(v, bodies, frame, sx+r, sy); got != 0 {
		t.Errorf("pick on rim = %d want 0", got)
	}
	if got := Pick(v, bodies, frame, sx+r+1, sy); got != -1 {
		t.Errorf("pick just outside = %d want -1", got)
	}
}

func TestPick_Uses3DOffset(t *testing.T) {
	bodies, frame := pickFixture()
	v := NewView(700, 400, 1.0)
	v.ThreeD = true

	// Venus sits at z=4; its hit circle moves down-screen with it.
	flatX := v.CenterX + frame.Bodies[1].X*v.Zoom
	flatY := v.CenterY + frame.Bodies[1].Y*v.Zoom
	if got := Pick(v, bodies, frame, flatX, flatY+4*DepthFactor); got != 1 {
		t.Errorf("pick at offset position = %d want 1", got)
	}

	v.ThreeD = false
	if got := Pick(v, bodies, frame, flatX, flatY); got != 1 {
		t.Errorf("2D pick = %d want 1", got)
	}
}

func TestPick_FirstMatchWinsOnOverlap(t *testing.T) {
	bodies := []sim.Body{
		{Name: "Small", Radius: 4},
		{Name: "Big", Radius: 20},
	}
	frame := sim.Snapshot{Bodies: []sim.BodyPos{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
	}}
	v := NewView(0, 0, 1.0)

	if got := Pick(v, bodies, frame, 0, 0); got != 0 {
		t.Errorf("overlap pick = %d want first body", got)
	}
}

func TestPick_EmptyScene(t *testing.T) {
	v := NewView(0, 0, 1.0)
	if got := Pick(v, nil, sim.Snapshot{}, 10, 10); got != -1 {
		t.Errorf("empty pick = %d want -1", got)
	}
}
