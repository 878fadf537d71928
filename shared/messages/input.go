package messages

// Key identifies a movement key on the wire.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// KeyUpDown is sent once per press and once per release of a movement key.
type KeyUpDown struct {
	Key  Key
	Down bool
}

// KeyDrop asks the authority to drop a bomb under the local player.
type KeyDrop struct{}
