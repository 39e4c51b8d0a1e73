// Package stream broadcasts each computed allocation to connected
// websocket clients, the same upgrade-and-broadcast shape as a live
// dashboard would use to watch dispatch decisions as they happen.
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"powerplant-dispatch/internal/result"
)

// Broadcaster fans out allocations to every connected client.
type Broadcaster struct {
	upgrader websocket.Upgrader
	clients  sync.Map // *websocket.Conn -> struct{}
}

// NewBroadcaster creates a Broadcaster that accepts connections from any origin.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades the request to a websocket and registers the connection
// for future broadcasts. It blocks, discarding any client-sent frames,
// until the connection closes.
func (b *Broadcaster) Handle(c *gin.Context) {
	conn, err := b.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Stream: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	b.clients.Store(conn, struct{}{})
	defer b.clients.Delete(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Publish sends alloc to every connected client. A client whose write fails
// is dropped; a broadcast never blocks on a slow or dead client beyond one
// write attempt.
func (b *Broadcaster) Publish(alloc []result.Allocation) {
	payload, err := json.Marshal(alloc)
	if err != nil {
		log.Printf("Stream: marshal allocation: %v", err)
		return
	}

	b.clients.Range(func(key, _ any) bool {
		conn := key.(*websocket.Conn)
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			b.clients.Delete(conn)
			conn.Close()
		}
		return true
	})
}
