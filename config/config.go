package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the arena scene.
const Default ecs.LayerID = 0

// BoardConfig contains grid and world-space scale values
type BoardConfig struct {
	TileSize float32 // world units per tile
	TilesX   int     // fallback width when the authority does not announce one
	TilesY   int
}

// PlayerConfig contains player pose and idle animation values
type PlayerConfig struct {
	Radius       float32 // model scale
	FloatHeight  float32 // resting height above the floor
	WobbleSpeed  float32 // radians per millisecond of the idle bob
	WobbleAmp    float32 // world units
	MaxHealth    int
	CameraOffset [2]float32 // (z offset, height) of the follow camera
}

// BoxConfig contains destructible box values
type BoxConfig struct {
	Fragments     int           // scatter fragments per exploding crate
	GraceDuration time.Duration // time an exploding crate stays visible
	Gravity       float32       // world units per second squared
	StoneVariants int
	DebrisCount   int
}

// BombConfig contains bomb pulse and spark values
type BombConfig struct {
	ScaleFactor   float32 // base scale relative to the player radius
	PulseAmp      float32
	PulseSpeed    float32 // radians per second
	SparksPerTick int
}

// ExplosionConfig contains particle burst sizes of a resolved blast
type ExplosionConfig struct {
	FlameParticles int // per flamed tile
	BigBurst       int
	SmallBurst     int
}

// ShakeConfig contains camera shake values
type ShakeConfig struct {
	Enabled  bool
	Duration time.Duration
	Strength float32 // multiplied by tile size
	Bias     float32 // strength at t=0 before the linear decay
}

// ParticlesConfig contains particle sink values
type ParticlesConfig struct {
	LargeCapacity    int
	SmallCapacity    int
	Size             float32
	EmitterTimeslice time.Duration
}

// NetworkConfig contains connection values
type NetworkConfig struct {
	ServerAddress string
	PlayerName    string
	Version       string
	QueueLimit    int // max buffered authority events before old ones are dropped
}

// SandboxConfig contains the offline authority values
type SandboxConfig struct {
	Arena        string
	MoveDuration time.Duration
	Fuse         time.Duration
	BlastRange   int
	Damage       int
	RespawnDelay time.Duration
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Assertions bool // panic on grid invariant violations instead of logging them
	LogLevel   string
	Seed       uint64 // 0 picks a time based seed
}

// Config holds general window configuration
type Config struct {
	Width         int
	Height        int
	PixelsPerUnit float32
	GameOverHold  time.Duration
}

// Global configuration instances
var C *Config
var Board BoardConfig
var Player PlayerConfig
var Box BoxConfig
var Bomb BombConfig
var Explosion ExplosionConfig
var Shake ShakeConfig
var Particles ParticlesConfig
var Network NetworkConfig
var Sandbox SandboxConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Floor        = color.RGBA{R: 46, G: 52, B: 58, A: 255}
	Wood         = color.RGBA{R: 156, G: 102, B: 48, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	StoneShades  = []color.RGBA{
		{R: 120, G: 120, B: 128, A: 255},
		{R: 98, G: 104, B: 110, A: 255},
		{R: 140, G: 134, B: 124, A: 255},
	}
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:         960,
		Height:        720,
		PixelsPerUnit: 24,
		GameOverHold:  1337 * time.Millisecond,
	}

	Board = BoardConfig{
		TileSize: 2.0,
		TilesX:   15,
		TilesY:   13,
	}

	Player = PlayerConfig{
		Radius:       0.8,
		FloatHeight:  1.0,
		WobbleSpeed:  0.005,
		WobbleAmp:    0.2,
		MaxHealth:    100,
		CameraOffset: [2]float32{12, 20},
	}

	Box = BoxConfig{
		Fragments:     8,
		GraceDuration: 1200 * time.Millisecond,
		Gravity:       18.0,
		StoneVariants: 3,
		DebrisCount:   120,
	}

	Bomb = BombConfig{
		ScaleFactor:   0.8,
		PulseAmp:      0.1,
		PulseSpeed:    10.0,
		SparksPerTick: 6,
	}

	Explosion = ExplosionConfig{
		FlameParticles: 40,
		BigBurst:       200,
		SmallBurst:     100,
	}

	Shake = ShakeConfig{
		Enabled:  true,
		Duration: 200 * time.Millisecond,
		Strength: 0.4,
		Bias:     0.3,
	}

	Particles = ParticlesConfig{
		LargeCapacity:    2000,
		SmallCapacity:    3000,
		Size:             0.15,
		EmitterTimeslice: 50 * time.Millisecond,
	}

	Network = NetworkConfig{
		ServerAddress: "localhost:2406",
		PlayerName:    "bomber",
		Version:       "0.1.0",
		QueueLimit:    4096,
	}

	Sandbox = SandboxConfig{
		Arena:        "classic",
		MoveDuration: 180 * time.Millisecond,
		Fuse:         2 * time.Second,
		BlastRange:   2,
		Damage:       50,
		RespawnDelay: 1500 * time.Millisecond,
	}

	Debug = DebugConfig{
		Assertions: false,
		LogLevel:   "info",
	}

	resetSettings()
}
