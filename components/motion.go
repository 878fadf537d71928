package components

import (
	"math"
	"time"

	"github.com/automoto/bombgrid/clock"
	"github.com/automoto/bombgrid/config"
	"github.com/automoto/bombgrid/shared/gamemath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// MotionData interpolates a player between grid tiles. The authority only
// sends "start moving in direction D for duration T"; everything in between
// is a closed-form function of the movement timer.
type MotionData struct {
	Moving       bool
	Base         mgl32.Vec3 // tile units, X/Z plane
	Move         mgl32.Vec3 // unit step of the current move
	Duration     time.Duration
	BaseRotation float32
	MoveRotation float32
	Facing       gamemath.Dir

	movement clock.Timer
	wobble   clock.Timer
}

// MotionSample is the pose of a MotionData at one instant.
type MotionSample struct {
	Position mgl32.Vec3 // tile units, X/Z plane
	Heading  float32    // yaw in radians
	Bob      float32    // idle vertical offset in world units
	Progress float32    // fraction of the current move, 0 when idle
}

var Motion = donburi.NewComponentType[MotionData]()

// NewMotion returns an idle motion facing +Y with the idle bob running from now.
func NewMotion(now time.Time) MotionData {
	m := MotionData{Facing: gamemath.PosY}
	m.wobble.Begin(now)
	return m
}

// StartMoving begins a move along dir lasting duration. An unfinished move is
// committed first as if it had completed, so back-to-back orders never drift.
func (m *MotionData) StartMoving(dir gamemath.Dir, duration time.Duration, now time.Time) {
	if m.Moving {
		m.Base = m.Base.Add(m.Move)
		m.BaseRotation = -gamemath.Rotation(m.Facing)
	}

	m.Move = mgl32.Vec3{float32(dir.X), 0, float32(dir.Y)}
	m.Duration = duration
	m.MoveRotation = gamemath.RotationAngleBetween(m.Facing, dir)

	m.Facing = dir
	m.Moving = true
	m.movement.Begin(now)
}

// ForcePosition teleports to tile (x, y), dropping any move in flight and
// snapping the heading to the current facing.
func (m *MotionData) ForcePosition(x, y int) {
	m.Moving = false
	m.BaseRotation = -gamemath.Rotation(m.Facing)
	m.MoveRotation = 0
	m.Base = mgl32.Vec3{float32(x), 0, float32(y)}
}

// Advance evaluates the motion at now. A move whose duration has elapsed is
// committed and the motion flips back to idle.
func (m *MotionData) Advance(now time.Time) MotionSample {
	var s MotionSample

	if m.Moving {
		elapsed := m.movement.Look(now)
		t := float32(1)
		if m.Duration > 0 {
			t = float32(elapsed) / float32(m.Duration)
		}

		s.Position = m.Base.Add(m.Move.Mul(t))
		s.Heading = m.BaseRotation + t*m.MoveRotation
		s.Progress = t

		if elapsed >= m.Duration {
			m.Moving = false
			m.Base = m.Base.Add(m.Move)
			m.BaseRotation += m.MoveRotation
			m.MoveRotation = 0
			s.Position = m.Base
			s.Heading = m.BaseRotation
			s.Progress = 0
			m.wobble.Begin(now)
		}
	} else {
		s.Position = m.Base
		s.Heading = m.BaseRotation
	}

	if m.Moving {
		m.wobble.Begin(now)
		return s
	}

	wobbleMs := m.wobble.Millis(now)
	s.Bob = float32(math.Sin(float64(wobbleMs*config.Player.WobbleSpeed))) * config.Player.WobbleAmp
	return s
}

// Tile returns the logical tile the motion rests on or is heading to.
func (m *MotionData) Tile() (int, int) {
	dst := m.Base
	if m.Moving {
		dst = dst.Add(m.Move)
	}
	return int(math.Round(float64(dst.X()))), int(math.Round(float64(dst.Z())))
}
