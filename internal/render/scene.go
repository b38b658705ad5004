package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/solar-explorer/internal/config"
	"github.com/iburimskiy/solar-explorer/internal/sim"
)

const (
	sunBaseRadius = 20.0

	// Ring bands span 1.3x to 1.8x the body radius.
	ringInnerFactor = 1.3
	ringOuterFactor = 1.8

	// Vertical squash of ring ellipses in 3D mode.
	ringFlatten = 0.2

	ellipseSegments = 64
)

var (
	backgroundColor = color.RGBA{R: 0x00, G: 0x00, B: 0x33, A: 0xFF}
	orbitColor      = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xFF}
	sunCore         = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	sunRim          = color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	ringBase        = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	labelColor      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Scene draws one frame of the simulation. It holds only render-side
// resources; kinematic state arrives per draw as a Snapshot.
type Scene struct {
	View   *View
	Bodies []sim.Body
	Sats   []sim.Satellite

	// Textures is index-aligned with Bodies; entries may be nil, in which
	// case the body falls back to a vector circle.
	Textures []*ebiten.Image
	Sun      *ebiten.Image // nil draws the procedural gradient sun

	Width, Height int
}

// Draw renders the whole scene in back-to-front order: starfield, orbit
// guides, sun, depth-sorted bodies with rings and labels, satellites.
func (sc *Scene) Draw(screen *ebiten.Image, frame sim.Snapshot) {
	screen.Fill(backgroundColor)
	sc.drawStarfield(screen)

	if sc.View.ShowOrbits {
		sc.drawOrbits(screen)
	}
	sc.drawSun(screen)

	for _, i := range DrawOrder(frame.Bodies, sc.View.ThreeD) {
		sc.drawBody(screen, i, frame.Bodies[i])
	}

	if sc.View.ShowSatellites {
		for i := range frame.Sats {
			sc.drawSatellite(screen, i, frame.Sats[i])
		}
	}
}

// drawStarfield re-derives the fixed-seed star placement for the current
// canvas extent, so the field survives resizes unchanged.
func (sc *Scene) drawStarfield(screen *ebiten.Image) {
	for _, star := range Starfield(sc.Width, sc.Height, config.StarCount) {
		c := mixColors(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, backgroundColor, star.Brightness)
		vector.DrawFilledCircle(screen, float32(star.X), float32(star.Y), float32(star.Size), c, false)
	}
}

func (sc *Scene) drawOrbits(screen *ebiten.Image) {
	for i := range sc.Bodies {
		rx, ry := sc.View.OrbitRadii(sc.Bodies[i].Distance, sc.Bodies[i].Inclination)
		strokeEllipse(screen, sc.View.CenterX, sc.View.CenterY, rx, ry, 1, orbitColor)
	}
}

func (sc *Scene) drawSun(screen *ebiten.Image) {
	r := sunBaseRadius * sc.View.Zoom
	cx, cy := sc.View.CenterX, sc.View.CenterY

	if sc.Sun != nil {
		drawTexture(screen, sc.Sun, cx, cy, r, 0)
	} else {
		// Radial gradient fallback, core to rim.
		for i := r; i > 0; i -= 2 {
			c := mixColors(sunCore, sunRim, i/r)
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(i), c, false)
		}
	}

	if sc.View.ShowNames {
		drawLabel(screen, "Sun", cx, cy+r+15)
	}
}

func (sc *Scene) drawBody(screen *ebiten.Image, i int, pos sim.BodyPos) {
	b := &sc.Bodies[i]
	x, y := sc.View.Project(pos.X, pos.Y, pos.Z)
	r := sc.View.ScreenRadius(b.Radius)

	// Drop shadow hints that the body is on the near side of the plane.
	if sc.View.ThreeD && pos.Z > 0 {
		const shadowOffset = 3
		vector.DrawFilledCircle(screen, float32(x+shadowOffset), float32(y+shadowOffset),
			float32(r), color.RGBA{A: 0x60}, false)
	}

	if tex := sc.texture(i); tex != nil && r > 5 {
		drawTexture(screen, tex, x, y, r, pos.Rotation)
	} else {
		sc.drawBodyCircle(screen, b, x, y, r)
	}

	if b.HasRings && r > 8 {
		sc.drawRings(screen, b, x, y, r)
	}

	if sc.View.ShowNames {
		drawLabel(screen, b.Name, x, y+r+12)
	}
}

func (sc *Scene) texture(i int) *ebiten.Image {
	if i < len(sc.Textures) {
		return sc.Textures[i]
	}
	return nil
}

// drawBodyCircle is the no-texture fallback: a shaded disc in 3D mode, a flat
// outlined circle in 2D.
func (sc *Scene) drawBodyCircle(screen *ebiten.Image, b *sim.Body, x, y, r float64) {
	if sc.View.ThreeD {
		for i := r; i > 0; i-- {
			c := mixColors(b.Color, color.RGBA{A: 0xFF}, Intensity(i/r))
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(i), c, false)
		}
	} else {
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), b.Color, false)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, labelColor, false)
	}
}

// drawRings draws three translucency-blended bands between 1.3x and 1.8x the
// body radius, flattened to an ellipse in 3D mode.
func (sc *Scene) drawRings(screen *ebiten.Image, b *sim.Body, x, y, r float64) {
	inner := r * ringInnerFactor
	outer := r * ringOuterFactor
	blends := []float64{0.8, 0.6, 0.4}

	for i, blend := range blends {
		ringR := inner + (outer-inner)*float64(i+1)/float64(len(blends))
		c := mixColors(ringBase, b.Color, blend)
		ry := ringR
		if sc.View.ThreeD {
			ry = ringR * ringFlatten
		}
		strokeEllipse(screen, x, y, ringR, ry, 3, c)
	}
}

func (sc *Scene) drawSatellite(screen *ebiten.Image, i int, pos sim.SatPos) {
	sat := &sc.Sats[i]
	r := sc.View.ScreenRadius(sat.Radius)
	if r < 1 {
		r = 1
	}
	// Satellites carry no depth of their own; project in the parent's plane.
	x := sc.View.CenterX + pos.X*sc.View.Zoom
	y := sc.View.CenterY + pos.Y*sc.View.Zoom

	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), sat.Color, false)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, labelColor, false)

	if sc.View.ShowNames && r > 2 {
		drawLabel(screen, sat.Name, x, y+r+8)
	}
}

// drawTexture draws a prebuilt shaded texture centered at (x, y), scaled to
// diameter 2r and rotated by the body's cosmetic self-spin.
func drawTexture(screen *ebiten.Image, tex *ebiten.Image, x, y, r, rotation float64) {
	w, h := tex.Bounds().Dx(), tex.Bounds().Dy()
	if w == 0 || h == 0 || r <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(rotation)
	op.GeoM.Scale(2*r/float64(w), 2*r/float64(h))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tex, op)
}

// strokeEllipse approximates an axis-aligned ellipse with a polyline.
func strokeEllipse(screen *ebiten.Image, cx, cy, rx, ry, width float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	step := 2 * math.Pi / ellipseSegments
	px := cx + rx
	py := cy
	for i := 1; i <= ellipseSegments; i++ {
		a := step * float64(i)
		nx := cx + rx*math.Cos(a)
		ny := cy + ry*math.Sin(a)
		vector.StrokeLine(screen, float32(px), float32(py), float32(nx), float32(ny), float32(width), c, false)
		px, py = nx, ny
	}
}

// drawLabel centers text horizontally at x using the debug font metrics.
func drawLabel(screen *ebiten.Image, text string, x, y float64) {
	ebitenutil.DebugPrintAt(screen, text, int(x)-len(text)*3, int(y))
}

// mixColors blends a toward b; ratio 1 is all a, ratio 0 all b.
func mixColors(a, b color.RGBA, ratio float64) color.RGBA {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return color.RGBA{
		R: uint8(float64(a.R)*ratio + float64(b.R)*(1-ratio)),
		G: uint8(float64(a.G)*ratio + float64(b.G)*(1-ratio)),
		B: uint8(float64(a.B)*ratio + float64(b.B)*(1-ratio)),
		A: 0xFF,
	}
}
