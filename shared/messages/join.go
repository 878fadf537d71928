package messages

// JoinRequest is sent by a client after connecting to request joining the game.
type JoinRequest struct {
	Version    string
	PlayerName string
	SessionID  string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
// The Welcome message follows.
type JoinAccepted struct {
	SessionID  string
	ServerName string
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
