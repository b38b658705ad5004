// Package sim owns the kinematic model: the flat body/satellite graph, the
// per-tick orbital update, and the scheduler that drives it.
package sim

import "image/color"

// rotationRate is the cosmetic self-spin applied per simulated day.
const rotationRate = 0.02

// Body is a star-orbiting entity. Position fields are derived state,
// recomputed on every tick from angle, distance and inclination.
type Body struct {
	Name        string
	Radius      float64
	Distance    float64
	Speed       float64 // radians per simulated day
	Color       color.RGBA
	HasRings    bool
	AxialTilt   float64 // degrees
	Inclination float64 // degrees

	Angle        float64
	InitialAngle float64
	Rotation     float64

	X, Y, Z float64

	// Satellites indexes into System.Satellites, catalog order.
	Satellites []int
}

// Satellite orbits a Body. Its position is always parent position plus a 2D
// polar offset; satellites carry no depth of their own.
type Satellite struct {
	Name     string
	Parent   int // index into System.Bodies
	Radius   float64
	Distance float64
	Speed    float64
	Color    color.RGBA

	Angle        float64
	InitialAngle float64

	X, Y float64
}
