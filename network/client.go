package network

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/automoto/bombgrid/logging"
	"github.com/automoto/bombgrid/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/segmentio/ksuid"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var ErrNotConnected = errors.New("not connected")

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	sessionID  ksuid.KSUID
	serverName string
	conn       *websocket.Conn

	events *Queue
}

func NewClient(queueLimit int) *Client {
	return &Client{
		state:     StateDisconnected,
		sessionID: ksuid.New(),
		events:    NewQueue(queueLimit),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	log := logging.For("client")

	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Info().Str("address", address).Msg("connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
			SessionID:  c.sessionID.String(),
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Info().Str("server", msg.ServerName).Str("session", msg.SessionID).Msg("join accepted")
		c.mu.Lock()
		c.serverName = msg.ServerName
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Warn().Str("reason", msg.Reason).Msg("join rejected")
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	queue[messages.Welcome](c.events)
	queue[messages.PlayerJoined](c.events)
	queue[messages.MoveStart](c.events)
	queue[messages.ForcePosition](c.events)
	queue[messages.BoxAdded](c.events)
	queue[messages.BombAdded](c.events)
	queue[messages.BombExploded](c.events)
	queue[messages.PlayerStatus](c.events)

	router.On(func(_ *router.NetworkClient, msg messages.GameOver) {
		log.Info().Msg("game over")
		c.events.Push(msg)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Info().Err(err).Msg("disconnected")
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Error().Err(err).Msg("router error")
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

// queue routes every message of type T into q.
func queue[T any](q *Queue) {
	router.On(func(_ *router.NetworkClient, msg T) {
		q.Push(msg)
	})
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) SessionID() string {
	return c.sessionID.String()
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

// Drain returns all authority messages received since the last call, in
// arrival order. Non-blocking.
func (c *Client) Drain(time.Time) []any {
	return c.events.Drain()
}

// Err reports why the session cannot continue, or nil.
func (c *Client) Err() error {
	switch c.State() {
	case StateError:
		return c.LastError()
	case StateDisconnected:
		return ErrNotConnected
	}
	return nil
}

// Send forwards input to the server once the join completed.
func (c *Client) Send(msg any) error {
	if c.State() != StateJoinedGame {
		return nil
	}
	return c.SendMessage(msg)
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
