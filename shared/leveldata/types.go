// Package leveldata provides TMX arena parsing for the offline authority.
// It has no dependencies on ebitengine or donburi, pure data only.
package leveldata

import "github.com/automoto/bombgrid/shared/messages"

// Arena holds the layout parsed from a TMX arena file, in tile coordinates.
type Arena struct {
	Name        string
	TilesX      int
	TilesY      int
	Boxes       []BoxSpawn
	SpawnPoints []SpawnPoint
}

// BoxSpawn is a box present when the round starts.
type BoxSpawn struct {
	X, Y int
	Type messages.BoxType
}

// SpawnPoint represents a player spawn tile.
type SpawnPoint struct {
	X, Y  int
	Index int
}

// Spawn returns the spawn point for the n-th joining player, cycling through
// the arena's spawn points. An arena without spawns uses the origin.
func (a *Arena) Spawn(n int) SpawnPoint {
	if len(a.SpawnPoints) == 0 {
		return SpawnPoint{}
	}
	return a.SpawnPoints[n%len(a.SpawnPoints)]
}
