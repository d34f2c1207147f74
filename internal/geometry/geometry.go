// Package geometry derives takeoff quantities from planar polygons given as
// ordered vertex lists.
package geometry

import (
	"math"
)

// Point is a vertex in model coordinates. Z points up.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Level tolerance used when comparing vertex elevations (model units).
const levelTolerance = 1e-6

// DegreesPerRadian is the factor used for reported tilt angles.
const DegreesPerRadian = 57.295779513

// Properties holds the derived quantities of one polygon.
type Properties struct {
	Area   float64 // Net polygon area (model units²)
	Height float64 // max(z) - min(z)

	// Bounding box
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64

	Tilt float64 // Radians between the polygon normal and +Z
}

// CalculateProperties computes every pure geometric property of pts.
// Polygons with fewer than three vertices yield the zero value.
func CalculateProperties(pts []Point) Properties {
	var props Properties
	if len(pts) < 3 {
		return props
	}

	props.MinX, props.MaxX = pts[0].X, pts[0].X
	props.MinY, props.MaxY = pts[0].Y, pts[0].Y
	props.MinZ, props.MaxZ = pts[0].Z, pts[0].Z
	for _, p := range pts {
		props.MinX = math.Min(props.MinX, p.X)
		props.MaxX = math.Max(props.MaxX, p.X)
		props.MinY = math.Min(props.MinY, p.Y)
		props.MaxY = math.Max(props.MaxY, p.Y)
		props.MinZ = math.Min(props.MinZ, p.Z)
		props.MaxZ = math.Max(props.MaxZ, p.Z)
	}

	props.Height = props.MaxZ - props.MinZ
	props.Area = Area(pts)
	props.Tilt = Tilt(pts)
	return props
}

// normal returns the Newell normal of the polygon. Its length is twice the
// polygon area; for a polygon in a z-plane it reduces to the shoelace sum.
func normal(pts []Point) (nx, ny, nz float64) {
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := pts[i], pts[j]
		nx += (a.Y - b.Y) * (a.Z + b.Z)
		ny += (a.Z - b.Z) * (a.X + b.X)
		nz += (a.X - b.X) * (a.Y + b.Y)
	}
	return nx, ny, nz
}

// Area returns the polygon area in its own plane. It is never negative.
func Area(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	nx, ny, nz := normal(pts)
	return math.Sqrt(nx*nx+ny*ny+nz*nz) / 2
}

// Height returns the vertical extent of the polygon.
func Height(pts []Point) float64 {
	if len(pts) == 0 {
		return 0
	}
	minZ, maxZ := pts[0].Z, pts[0].Z
	for _, p := range pts[1:] {
		minZ = math.Min(minZ, p.Z)
		maxZ = math.Max(maxZ, p.Z)
	}
	return maxZ - minZ
}

// Tilt returns the angle in radians between the polygon normal and the
// vertical axis: 0 for an upward facing roof, π/2 for a wall, π for a floor
// whose normal faces down.
func Tilt(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	nx, ny, nz := normal(pts)
	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if length == 0 {
		return 0
	}
	return math.Acos(math.Max(-1, math.Min(1, nz/length)))
}

// Pitch returns rise per 12 units of run for a surface tilted by tilt radians.
func Pitch(tilt float64) float64 {
	return math.Tan(tilt) * 12
}

// AngleDegrees converts a tilt in radians to degrees.
func AngleDegrees(tilt float64) float64 {
	return tilt * DegreesPerRadian
}

func sameLevel(a, b Point) bool {
	return math.Abs(a.Z-b.Z) <= levelTolerance
}

func planDistance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
