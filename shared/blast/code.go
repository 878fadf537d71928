// Package blast encodes and decodes the packed blast code the authority sends
// with every explosion: four 2-bit lengths, least significant field first,
// in the order +X, -X, +Y, -Y.
package blast

import (
	"fmt"

	"github.com/automoto/bombgrid/shared/gamemath"
)

// MaxLength is the largest length a 2-bit field can carry.
const MaxLength = 3

// Code is the packed wire representation.
type Code uint8

// Lengths holds the decoded per-direction blast lengths in tiles.
type Lengths struct {
	PosX, NegX, PosY, NegY int
}

// Ray is one direction of a blast.
type Ray struct {
	Dir    gamemath.Dir
	Length int
}

// Decode unpacks a wire code. Bits above the low byte are ignored.
func Decode(code uint32) Lengths {
	return Lengths{
		PosX: int(code & 0x3),
		NegX: int((code >> 2) & 0x3),
		PosY: int((code >> 4) & 0x3),
		NegY: int((code >> 6) & 0x3),
	}
}

// Lengths decodes c.
func (c Code) Lengths() Lengths {
	return Decode(uint32(c))
}

// Encode packs l, rejecting lengths outside [0, MaxLength].
func Encode(l Lengths) (Code, error) {
	fields := [4]int{l.PosX, l.NegX, l.PosY, l.NegY}
	var c Code
	for i, n := range fields {
		if n < 0 || n > MaxLength {
			return 0, fmt.Errorf("blast length %d for %v out of range [0,%d]", n, gamemath.Cardinal[i], MaxLength)
		}
		c |= Code(n) << (2 * i)
	}
	return c, nil
}

// Rays returns the four directional rays in processing order (+X, -X, +Y, -Y).
func (l Lengths) Rays() [4]Ray {
	return [4]Ray{
		{Dir: gamemath.PosX, Length: l.PosX},
		{Dir: gamemath.NegX, Length: l.NegX},
		{Dir: gamemath.PosY, Length: l.PosY},
		{Dir: gamemath.NegY, Length: l.NegY},
	}
}

// Set stores n as the length along d. Non-cardinal directions are ignored.
func (l *Lengths) Set(d gamemath.Dir, n int) {
	switch d {
	case gamemath.PosX:
		l.PosX = n
	case gamemath.NegX:
		l.NegX = n
	case gamemath.PosY:
		l.PosY = n
	case gamemath.NegY:
		l.NegY = n
	}
}
