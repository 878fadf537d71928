package gamemath

import "math"

// Dir is a grid direction. Valid movement directions are the four cardinal
// unit vectors; Y grows along world +Z.
type Dir struct {
	X, Y int
}

var (
	PosX = Dir{1, 0}
	NegX = Dir{-1, 0}
	PosY = Dir{0, 1}
	NegY = Dir{0, -1}
)

// Cardinal lists the four directions in blast code order (+X, -X, +Y, -Y).
var Cardinal = [4]Dir{PosX, NegX, PosY, NegY}

// IsCardinal reports whether d is one of the four unit directions.
func (d Dir) IsCardinal() bool {
	return d == PosX || d == NegX || d == PosY || d == NegY
}

// Rotation returns the model yaw (radians about +Y) that faces d.
// Non-cardinal directions face +Y.
func Rotation(d Dir) float32 {
	switch d {
	case PosY:
		return 0
	case NegY:
		return math.Pi
	case PosX:
		return -math.Pi / 2
	case NegX:
		return math.Pi / 2
	}
	return 0
}

// RotationAngleBetween returns the signed yaw delta that turns a model from
// facing from to facing to along the shorter arc. The result is within [-π, π];
// opposite directions yield a half turn.
func RotationAngleBetween(from, to Dir) float32 {
	diff := Rotation(from) - Rotation(to)
	if abs32(diff) > math.Pi {
		diff -= sign32(diff) * 2 * math.Pi
	}
	return diff
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign32(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
