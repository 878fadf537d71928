package components

import (
	"github.com/automoto/bombgrid/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	ID     int
	Name   string
	Health int
	Frags  int
}

var Player = donburi.NewComponentType[PlayerData]()

// SetHealth stores h clamped to 0..MaxHealth.
func (p *PlayerData) SetHealth(h int) {
	p.Health = max(0, min(h, config.Player.MaxHealth))
}

// Alive reports whether the player should be updated and drawn.
func (p *PlayerData) Alive() bool {
	return p.Health > 0
}

// HealthRatio returns health as a fraction of the maximum.
func (p *PlayerData) HealthRatio() float32 {
	if config.Player.MaxHealth <= 0 {
		return 0
	}
	return float32(p.Health) / float32(config.Player.MaxHealth)
}
