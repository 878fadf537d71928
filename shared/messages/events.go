package messages

// Welcome is the first message of a session. It assigns the local player id
// and announces the board size.
type Welcome struct {
	PlayerID int
	TilesX   int
	TilesY   int
}

// PlayerJoined announces a player, the local one included.
type PlayerJoined struct {
	ID   int
	Name string
}

// MoveStart orders a player to walk one tile along (DX, DY).
type MoveStart struct {
	PlayerID   int
	DX, DY     int
	DurationMs int
}

// ForcePosition teleports a player, e.g. on spawn or respawn.
type ForcePosition struct {
	PlayerID int
	X, Y     int
}

// BoxType is the wire value of a box material.
type BoxType int

const (
	BoxCrate BoxType = 0
	BoxStone BoxType = 1
)

// BoxAdded places a box on an empty tile.
type BoxAdded struct {
	X, Y int
	Type BoxType
}

// BombAdded places a bomb.
type BombAdded struct {
	X, Y    int
	BombID  int
	OwnerID int
}

// BombExploded resolves a bomb. Code packs four 2-bit blast lengths, least
// significant first: +X, -X, +Y, -Y.
type BombExploded struct {
	BombID int
	Code   uint32
}

// PlayerStatus carries the authority's view of a player's health and score.
type PlayerStatus struct {
	PlayerID int
	Health   int
	Frags    int
}

// GameOver ends the session.
type GameOver struct{}
