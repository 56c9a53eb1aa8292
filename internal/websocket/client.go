package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a middleman between one websocket connection and the hub.
type Client struct {
	hub           *Hub
	conn          *websocket.Conn
	send          chan []byte
	id            string
	subscriptions map[string]bool // portfolio ids this client follows
	mu            sync.Mutex
}

// readPump pumps messages from the websocket connection to the hub.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Errorf("WebSocket error: %v", err)
			}
			break
		}
		c.handleMessage(data)
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(data []byte) {
	var msg subscriptionMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendMessage(Message{Type: "error", Error: "Invalid message format"})
		return
	}

	switch msg.Type {
	case "subscribe":
		c.setSubscriptions(msg.Portfolios, true)
		c.sendMessage(Message{Type: "subscribed", ID: msg.ID})
	case "unsubscribe":
		c.setSubscriptions(msg.Portfolios, false)
		c.sendMessage(Message{Type: "unsubscribed", ID: msg.ID})
	case "ping":
		c.sendMessage(Message{Type: "pong", ID: msg.ID})
	default:
		c.sendMessage(Message{Type: "error", Error: "Unknown message type", ID: msg.ID})
	}
}

func (c *Client) setSubscriptions(portfolios []string, subscribe bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hub.mu.Lock()
	defer c.hub.mu.Unlock()

	for _, id := range portfolios {
		if subscribe {
			c.subscriptions[id] = true
			if c.hub.subscriptions[id] == nil {
				c.hub.subscriptions[id] = make(map[*Client]bool)
			}
			c.hub.subscriptions[id][c] = true
		} else {
			delete(c.subscriptions, id)
			if subs := c.hub.subscriptions[id]; subs != nil {
				delete(subs, c)
				if len(subs) == 0 {
					delete(c.hub.subscriptions, id)
				}
			}
		}
	}
}

func (c *Client) sendMessage(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}
