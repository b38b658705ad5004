package render

import (
	"math"
	"testing"

	"github.com/iburimskiy/solar-explorer/internal/sim"
)

func TestProject_2D(t *testing.T) {
	v := NewView(700, 400, 2.0)
	v.ThreeD = false

	sx, sy := v.Project(150, -30, 99)
	if sx != 700+150*2 {
		t.Errorf("sx=%v want 1000", sx)
	}
	if sy != 400-30*2 {
		t.Errorf("sy=%v want 340", sy)
	}
}

func TestProject_3DDepthOffset(t *testing.T) {
	v := NewView(700, 400, 2.0)
	v.ThreeD = true

	_, sy := v.Project(0, 10, 40)
	want := 400 + 10*2 + 40*DepthFactor*2
	if sy != want {
		t.Errorf("sy=%v want %v", sy, want)
	}
}

func TestProject_LinearInZoom(t *testing.T) {
	v := NewView(700, 400, 1.0)
	v.ThreeD = true

	sx1, sy1 := v.Project(80, 60, 20)
	v.SetZoom(2.0)
	sx2, sy2 := v.Project(80, 60, 20)

	if math.Abs((sx2-700)-2*(sx1-700)) > 1e-9 {
		t.Errorf("x displacement not linear: %v vs %v", sx2-700, sx1-700)
	}
	if math.Abs((sy2-400)-2*(sy1-400)) > 1e-9 {
		t.Errorf("y displacement not linear: %v vs %v", sy2-400, sy1-400)
	}
	if v.ScreenRadius(9) != 18 {
		t.Errorf("radius=%v want 18", v.ScreenRadius(9))
	}
}

func TestDrawOrder_3DAscendingZ(t *testing.T) {
	bodies := []sim.BodyPos{
		{Z: 5}, {Z: -3}, {Z: 0}, {Z: -3}, {Z: 2},
	}
	order := DrawOrder(bodies, true)

	prev := math.Inf(-1)
	for _, i := range order {
		if bodies[i].Z < prev {
			t.Fatalf("order %v not ascending in z", order)
		}
		prev = bodies[i].Z
	}
	// Stable: the two z=-3 entries keep catalog order.
	if order[0] != 1 || order[1] != 3 {
		t.Errorf("tie not broken by catalog order: %v", order)
	}
}

func TestDrawOrder_2DInsertionOrder(t *testing.T) {
	bodies := []sim.BodyPos{{Z: 9}, {Z: -9}, {Z: 1}}
	order := DrawOrder(bodies, false)
	for i, idx := range order {
		if idx != i {
			t.Fatalf("2D order=%v want identity", order)
		}
	}
}

func TestOrbitRadii(t *testing.T) {
	v := NewView(0, 0, 2.0)

	v.ThreeD = false
	rx, ry := v.OrbitRadii(100, 30)
	if rx != 200 || ry != 200 {
		t.Errorf("2D radii=(%v,%v) want (200,200)", rx, ry)
	}

	v.ThreeD = true
	rx, ry = v.OrbitRadii(100, 30)
	want := 200 * math.Cos(30*math.Pi/180)
	if rx != 200 || math.Abs(ry-want) > 1e-9 {
		t.Errorf("3D radii=(%v,%v) want (200,%v)", rx, ry, want)
	}
}
