package websocket

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Conn is the slice of the fiber websocket connection the hub needs; tests
// substitute an in-memory implementation.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Client struct {
	UserID uuid.UUID
	Role   string
	Conn   Conn
}

var clients = make(map[uuid.UUID]*Client)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)

// UserChannel and RoleChannel derive the publish key for a target. Consumers
// subscribe implicitly: a connected client listens on its own user channel and
// on its role channel.
func UserChannel(userID uuid.UUID) string { return "user:" + userID.String() }
func RoleChannel(role string) string      { return "role:" + role }

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if existing, ok := clients[client.UserID]; ok && existing.Conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		}
	}
}

// Publish writes payload to every connected client listening on channelKey.
// Best effort, at most once: a failed write drops the client and moves on.
func Publish(channelKey string, payload interface{}) {
	clientsMu.RLock()
	var targets []*Client
	for _, client := range clients {
		if UserChannel(client.UserID) == channelKey || RoleChannel(client.Role) == channelKey {
			targets = append(targets, client)
		}
	}
	clientsMu.RUnlock()

	for _, client := range targets {
		if err := client.Conn.WriteJSON(payload); err != nil {
			log.Printf("Error publishing to client %s: %v", client.UserID, err)
			client.Conn.Close()
			clientsMu.Lock()
			if existing, ok := clients[client.UserID]; ok && existing.Conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		}
	}
}

// ConnectedCount is used by tests and the health endpoint.
func ConnectedCount() int {
	clientsMu.RLock()
	defer clientsMu.RUnlock()
	return len(clients)
}
