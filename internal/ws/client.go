package ws

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/breakthecode/server/internal/model"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong before the connection is
	// considered dead
	pongWait = 60 * time.Second

	// Ping interval; must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound message size; game events are tiny
	maxMessageSize = 1024

	// Buffer size for outgoing messages
	sendBufferSize = 32
)

// Client is one websocket connection with its outbound queue
type Client struct {
	id   model.ConnectionID
	conn *websocket.Conn
	send chan []byte
}

func newClient(id model.ConnectionID, conn *websocket.Conn) *Client {
	return &Client{
		id:   id,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// ID returns the connection identifier
func (c *Client) ID() model.ConnectionID {
	return c.id
}

// readPump reads inbound envelopes and hands them to the gateway until the
// connection drops. Runs on the connection's request goroutine.
func (c *Client) readPump(g *Gateway) {
	defer func() {
		g.connectionClosed(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			return
		}
		g.dispatch(c, env)
	}
}

// writePump drains the outbound queue and keeps the connection alive with
// pings. Runs on its own goroutine; exits when the hub closes the queue.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
