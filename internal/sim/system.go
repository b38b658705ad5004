package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/solar-explorer/internal/catalog"
)

// System is the full kinematic graph: bodies and satellites in flat slices,
// satellites holding a parent index rather than a pointer.
type System struct {
	Bodies     []Body
	Satellites []Satellite
}

// Build constructs the system from catalog records. Starting angles are
// randomized from rng, like every fresh run of the simulation; tests pass a
// fixed-seed source. Satellites whose parent is not in the catalog are
// dropped. Positions are computed immediately so the first frame is valid
// before any tick.
func Build(cat *catalog.Catalog, rng *rand.Rand) *System {
	s := &System{}

	for _, rec := range cat.Bodies {
		angle := rng.Float64() * 2 * math.Pi
		s.Bodies = append(s.Bodies, Body{
			Name:         rec.Name,
			Radius:       rec.Radius,
			Distance:     rec.Distance,
			Speed:        rec.Speed,
			Color:        rec.Color,
			HasRings:     rec.HasRings,
			AxialTilt:    rec.AxialTilt,
			Inclination:  rec.Inclination,
			Angle:        angle,
			InitialAngle: angle,
		})
	}

	for _, rec := range cat.Satellites {
		parent := -1
		for i := range s.Bodies {
			if s.Bodies[i].Name == rec.Parent {
				parent = i
				break
			}
		}
		if parent < 0 {
			continue
		}
		angle := rng.Float64() * 2 * math.Pi
		s.Satellites = append(s.Satellites, Satellite{
			Name:         rec.Name,
			Parent:       parent,
			Radius:       rec.Radius,
			Distance:     rec.Distance,
			Speed:        rec.Speed,
			Color:        rec.Color,
			Angle:        angle,
			InitialAngle: angle,
		})
		s.Bodies[parent].Satellites = append(s.Bodies[parent].Satellites, len(s.Satellites)-1)
	}

	s.recompute()
	return s
}

// Advance steps every body and satellite by timeScale simulated days.
func (s *System) Advance(timeScale float64) {
	for i := range s.Bodies {
		b := &s.Bodies[i]
		b.Angle += b.Speed * timeScale
		b.Rotation += rotationRate * timeScale
	}
	for i := range s.Satellites {
		s.Satellites[i].Angle += s.Satellites[i].Speed * timeScale
	}
	s.recompute()
}

// Reset restores every angle to its initial snapshot and zeroes self-spin.
func (s *System) Reset() {
	for i := range s.Bodies {
		s.Bodies[i].Angle = s.Bodies[i].InitialAngle
		s.Bodies[i].Rotation = 0
	}
	for i := range s.Satellites {
		s.Satellites[i].Angle = s.Satellites[i].InitialAngle
	}
	s.recompute()
}

// recompute rebuilds derived positions from the angles. Bodies get the
// inclination-projected pseudo-3D position; satellites are a flat polar
// offset from the parent.
func (s *System) recompute() {
	for i := range s.Bodies {
		b := &s.Bodies[i]
		incl := b.Inclination * math.Pi / 180
		b.X = b.Distance * math.Cos(b.Angle)
		b.Y = b.Distance * math.Sin(b.Angle) * math.Cos(incl)
		b.Z = b.Distance * math.Sin(b.Angle) * math.Sin(incl)
	}
	for i := range s.Satellites {
		sat := &s.Satellites[i]
		p := &s.Bodies[sat.Parent]
		sat.X = p.X + sat.Distance*math.Cos(sat.Angle)
		sat.Y = p.Y + sat.Distance*math.Sin(sat.Angle)
	}
}

// Find returns the index of the named body, or -1.
func (s *System) Find(name string) int {
	for i := range s.Bodies {
		if s.Bodies[i].Name == name {
			return i
		}
	}
	return -1
}

// BodyPos is a body's derived state at a tick boundary.
type BodyPos struct {
	X, Y, Z  float64
	Rotation float64
}

// SatPos is a satellite's derived state at a tick boundary.
type SatPos struct {
	X, Y float64
}

// Snapshot is the immutable per-tick handoff from the scheduler to the render
// side. Slices are index-aligned with System.Bodies and System.Satellites;
// the static fields (radius, color, name) are read from the System, which is
// immutable outside the kinematic writer.
type Snapshot struct {
	Date   time.Time
	Bodies []BodyPos
	Sats   []SatPos
}

// snapshot copies the derived state out of the system.
func (s *System) snapshot(date time.Time) Snapshot {
	snap := Snapshot{
		Date:   date,
		Bodies: make([]BodyPos, len(s.Bodies)),
		Sats:   make([]SatPos, len(s.Satellites)),
	}
	for i := range s.Bodies {
		b := &s.Bodies[i]
		snap.Bodies[i] = BodyPos{X: b.X, Y: b.Y, Z: b.Z, Rotation: b.Rotation}
	}
	for i := range s.Satellites {
		snap.Sats[i] = SatPos{X: s.Satellites[i].X, Y: s.Satellites[i].Y}
	}
	return snap
}
