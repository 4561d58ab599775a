// Package ring computes shape placements for circles of squares and
// ellipses, the building blocks of both illusions.
package ring

import (
	"math"

	"github.com/golang/geo/r2"
)

// ColorClass selects which of the two palette colors a shape takes.
// None marks a gap slot: no shape is drawn there.
type ColorClass int

const (
	None ColorClass = iota
	Dark
	Light
)

// Placement is one shape on a ring: its center offset from the ring
// center, its orientation in degrees, and its color class.
type Placement struct {
	Offset   r2.Point
	Rotation float64
	Class    ColorClass
}

const degPerRad = 180 / math.Pi

// squareTilt is the tilt of each square away from the tangent, in
// degrees. The sign alternates between adjacent rings.
const squareTilt = 12

// SquareCount returns the number of squares on a circle of the given
// radius, spacing them roughly half a square width apart. The count is
// rounded down to the nearest even integer so that the color
// alternation closes around the ring; the illusion depends on it.
func SquareCount(radius float64, width int) int {
	return int(math.Ceil(2*math.Pi*radius/(1.5*float64(width)))) &^ 1
}

// Squares places SquareCount evenly spaced squares on a circle of the
// given radius. Colors alternate by index, Light first. The parity
// flips the tilt direction only.
func Squares(radius float64, width int, parity bool) []Placement {
	n := SquareCount(radius, width)
	step := 2 * math.Pi / float64(n)

	tilt := float64(-squareTilt)
	if parity {
		tilt = squareTilt
	}

	ps := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		theta := float64(i) * step
		class := Light
		if i&1 == 1 {
			class = Dark
		}
		ps = append(ps, Placement{
			Offset:   r2.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)},
			Rotation: tilt + theta*degPerRad,
			Class:    class,
		})
	}
	return ps
}

// Ellipses describes one circle of ellipse slots. Count includes the
// gap slots, so a ring of m visible ellipses has Count 2m.
type Ellipses struct {
	Radius    float64
	Count     int
	Start     float64 // angle of the first slot, radians
	Step      float64 // angle between slots, radians
	DarkFirst bool    // true if slot 0 is dark
	FlipAt    *int    // slot after which dark and light swap; nil means never
}

// Placements lays the slots out around the circle. Each ellipse is
// oriented with its long axis perpendicular to the ring radius.
func (e Ellipses) Placements() []Placement {
	dark := e.DarkFirst
	theta := e.Start

	ps := make([]Placement, 0, e.Count)
	for i := 0; i < e.Count; i++ {
		ps = append(ps, Placement{
			Offset:   r2.Point{X: e.Radius * math.Cos(theta), Y: e.Radius * math.Sin(theta)},
			Rotation: 90 + theta*degPerRad,
			Class:    slotClass(i, dark),
		})
		theta += e.Step
		if e.FlipAt != nil && i == *e.FlipAt {
			dark = !dark
		}
	}
	return ps
}

// slotClass applies the four-phase cycle [Dark None Light None],
// starting from Light instead when darkFirst is false.
func slotClass(i int, darkFirst bool) ColorClass {
	switch i % 4 {
	case 0:
		if darkFirst {
			return Dark
		}
		return Light
	case 2:
		if darkFirst {
			return Light
		}
		return Dark
	}
	return None
}

// Braid composes one braid of illusion 2: three concentric circles of
// 2n ellipse slots each, returned in draw order (middle, inner,
// outer) so that later rings paint over earlier ones at overlaps. The
// inner and outer rings sit one ellipse short-radius inside and
// outside the middle ring, start one slot later, and flip their color
// order near the bottom of the circle so the gaps line up with the
// middle ring's ellipses. Flipping the whole braid starts it at the
// bottom instead of the top, which swaps the color roles.
func Braid(radius, shortRadius float64, n int, flipped bool) [3]Ellipses {
	step := math.Pi / float64(n)
	start := -math.Pi / 2
	if flipped {
		start = math.Pi / 2
	}

	slots := 2 * n
	innerFlip := slots/2 - 1
	outerFlip := slots/2 - 2

	return [3]Ellipses{
		{Radius: radius, Count: slots, Start: start, Step: step, DarkFirst: true},
		{Radius: radius - shortRadius, Count: slots, Start: start + step, Step: step, DarkFirst: true, FlipAt: &innerFlip},
		{Radius: radius + shortRadius, Count: slots, Start: start + step, Step: step, DarkFirst: false, FlipAt: &outerFlip},
	}
}
