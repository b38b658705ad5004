package catalog

import "image/color"

// hex converts a known-good "#RRGGBB" literal. Only used for the built-in
// tables below.
func hex(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	}
	return c
}

// Builtin returns the default catalog: the nine classical planets and their
// major moons, with display-scaled radii, distances and speeds.
func Builtin() *Catalog {
	return &Catalog{
		Bodies: []Record{
			{
				Name: "Mercury", Radius: 5, Distance: 80, Speed: 0.04,
				Color: hex("#8C7853"), Image: "mercury",
				AxialTilt: 0.034, Inclination: 7.0,
				Facts: "Closest to the Sun. Temperature varies from 800F to -300F. " +
					"Has a very thin exosphere. Mercury's year is just 88 Earth days.",
			},
			{
				Name: "Venus", Radius: 8, Distance: 110, Speed: 0.03,
				Color: hex("#FFC649"), Image: "venus",
				AxialTilt: 177.4, Inclination: 3.4,
				Facts: "Hottest planet with surface temperatures over 450C. " +
					"Spins backward and has a thick, toxic atmosphere of CO2 with clouds of sulfuric acid.",
			},
			{
				Name: "Earth", Radius: 9, Distance: 150, Speed: 0.02,
				Color: hex("#6B93D6"), Image: "earth",
				AxialTilt: 23.44, Inclination: 0.0,
				Facts: "Our home planet! The only known place with life. " +
					"71% of surface is covered by water. Has a protective magnetic field.",
			},
			{
				Name: "Mars", Radius: 7, Distance: 190, Speed: 0.015,
				Color: hex("#CD5C5C"), Image: "mars",
				AxialTilt: 25.19, Inclination: 1.9,
				Facts: "The Red Planet. Has the largest volcano (Olympus Mons) and canyon " +
					"(Valles Marineris) in the solar system. Thin atmosphere mostly of CO2.",
			},
			{
				Name: "Jupiter", Radius: 25, Distance: 280, Speed: 0.008,
				Color: hex("#D8CA9D"), Image: "jupiter",
				AxialTilt: 3.13, Inclination: 1.3, HasRings: true,
				Facts: "Largest planet. A gas giant with no solid surface. " +
					"Has a Great Red Spot storm larger than Earth! Strong magnetic field and many moons.",
			},
			{
				Name: "Saturn", Radius: 22, Distance: 350, Speed: 0.006,
				Color: hex("#FAD5A5"), Image: "saturn",
				AxialTilt: 26.73, Inclination: 2.5, HasRings: true,
				Facts: "Famous for its spectacular ring system made of ice and rock particles. " +
					"Less dense than water - it would float! Has over 80 moons.",
			},
			{
				Name: "Uranus", Radius: 15, Distance: 420, Speed: 0.004,
				Color: hex("#4FD0E7"), Image: "uranus",
				AxialTilt: 97.77, Inclination: 0.8, HasRings: true,
				Facts: "Tilted on its side (98 degrees). An ice giant with a cold, windy atmosphere " +
					"of hydrogen and helium. Has faint rings and 27 known moons.",
			},
			{
				Name: "Neptune", Radius: 14, Distance: 480, Speed: 0.003,
				Color: hex("#4B70DD"), Image: "neptune",
				AxialTilt: 28.32, Inclination: 1.8, HasRings: true,
				Facts: "Windiest planet with speeds up to 1,200 mph! An ice giant with the " +
					"strongest winds in the solar system. Has a dark storm spot and 14 known moons.",
			},
			{
				Name: "Pluto", Radius: 3, Distance: 520, Speed: 0.002,
				Color: hex("#C0C0C0"), Image: "pluto",
				AxialTilt: 122.53, Inclination: 17.2,
				Facts: "A dwarf planet in the Kuiper belt. Has a thin atmosphere that freezes and " +
					"falls to the surface when it's farther from the Sun. Has 5 known moons including Charon.",
			},
		},
		Satellites: []SatelliteRecord{
			{Name: "Moon", Parent: "Earth", Radius: 3, Distance: 20, Speed: 0.05, Color: hex("#AAAAAA")},
			{Name: "Phobos", Parent: "Mars", Radius: 1, Distance: 15, Speed: 0.1, Color: hex("#BBBBBB")},
			{Name: "Deimos", Parent: "Mars", Radius: 1, Distance: 18, Speed: 0.08, Color: hex("#CCCCCC")},
			{Name: "Io", Parent: "Jupiter", Radius: 2, Distance: 30, Speed: 0.15, Color: hex("#FFE4B5")},
			{Name: "Europa", Parent: "Jupiter", Radius: 2, Distance: 35, Speed: 0.12, Color: hex("#FFF8DC")},
			{Name: "Ganymede", Parent: "Jupiter", Radius: 3, Distance: 40, Speed: 0.1, Color: hex("#F5DEB3")},
			{Name: "Callisto", Parent: "Jupiter", Radius: 2, Distance: 45, Speed: 0.08, Color: hex("#D2B48C")},
			{Name: "Titan", Parent: "Saturn", Radius: 3, Distance: 40, Speed: 0.07, Color: hex("#FFA07A")},
			{Name: "Rhea", Parent: "Saturn", Radius: 2, Distance: 35, Speed: 0.09, Color: hex("#F0E68C")},
			{Name: "Iapetus", Parent: "Saturn", Radius: 2, Distance: 50, Speed: 0.06, Color: hex("#CD853F")},
			{Name: "Titania", Parent: "Uranus", Radius: 2, Distance: 30, Speed: 0.05, Color: hex("#ADD8E6")},
			{Name: "Oberon", Parent: "Uranus", Radius: 2, Distance: 35, Speed: 0.045, Color: hex("#87CEFA")},
			{Name: "Triton", Parent: "Neptune", Radius: 2, Distance: 30, Speed: 0.04, Color: hex("#AFEEEE")},
			{Name: "Charon", Parent: "Pluto", Radius: 1, Distance: 15, Speed: 0.03, Color: hex("#D3D3D3")},
		},
	}
}
