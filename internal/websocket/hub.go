package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/quantfolio/portfolio-analytics/pkg/utils/logger"
)

// Hub maintains the set of active clients and pushes portfolio update
// events to them. Clients can subscribe to individual portfolio ids;
// unsubscribed clients still receive nothing.
type Hub struct {
	clients       map[*Client]bool
	events        chan event
	register      chan *Client
	unregister    chan *Client
	subscriptions map[string]map[*Client]bool // portfolio id -> clients
	log           *logger.Logger
	mu            sync.RWMutex
}

// event is a queued notification awaiting fan-out by the run loop.
type event struct {
	portfolioID string
	payload     []byte
}

// Message is an event pushed to subscribed clients.
type Message struct {
	Type        string `json:"type"`
	PortfolioID string `json:"portfolioId,omitempty"`
	Error       string `json:"error,omitempty"`
	ID          string `json:"id,omitempty"`
}

// subscriptionMessage is the only inbound message shape.
type subscriptionMessage struct {
	Type       string   `json:"type"`
	Portfolios []string `json:"portfolios"`
	ID         string   `json:"id,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Demo posture; production deployments should restrict origins.
		return true
	},
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var clientSeq atomic.Uint64

// NewHub creates a hub with no clients.
func NewHub() *Hub {
	return &Hub{
		clients:       make(map[*Client]bool),
		events:        make(chan event, 256),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		subscriptions: make(map[string]map[*Client]bool),
		log:           logger.GetLogger("websocket.hub"),
	}
}

// Run processes registration, unregistration, and notification events
// until the context is canceled. All sends to and the close of a
// client's send channel happen here, on the hub goroutine.
func (h *Hub) Run(ctx context.Context) {
	h.log.Info("Starting WebSocket hub")

	for {
		select {
		case <-ctx.Done():
			h.log.Info("WebSocket hub shutting down")
			return

		case client := <-h.register:
			h.clients[client] = true
			h.log.Infof("Client %s registered", client.id)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.removeClientSubscriptions(client)
				h.log.Infof("Client %s unregistered", client.id)
			}

		case ev := <-h.events:
			h.mu.RLock()
			subscribers := make([]*Client, 0, len(h.subscriptions[ev.portfolioID]))
			for client := range h.subscriptions[ev.portfolioID] {
				subscribers = append(subscribers, client)
			}
			h.mu.RUnlock()

			for _, client := range subscribers {
				if !h.clients[client] {
					continue
				}
				select {
				case client.send <- ev.payload:
				default:
					// Slow consumer; closing the connection makes its
					// read pump exit and funnel through unregister.
					client.conn.Close()
				}
			}
		}
	}
}

// NotifyPortfolioUpdated pushes a portfolio.updated event to every client
// subscribed to the portfolio.
func (h *Hub) NotifyPortfolioUpdated(portfolioID string) {
	h.notify(Message{Type: "portfolio.updated", PortfolioID: portfolioID})
}

// NotifyActiveChanged pushes a portfolio.activated event.
func (h *Hub) NotifyActiveChanged(portfolioID string) {
	h.notify(Message{Type: "portfolio.activated", PortfolioID: portfolioID})
}

func (h *Hub) notify(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.log.Errorf("Failed to encode hub message: %v", err)
		return
	}

	select {
	case h.events <- event{portfolioID: msg.PortfolioID, payload: payload}:
	default:
		h.log.Warnf("Event backlog full, dropping %s for %s", msg.Type, msg.PortfolioID)
	}
}

// HandleWebSocket upgrades the connection and starts the client pumps.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:           h,
		conn:          conn,
		send:          make(chan []byte, 256),
		id:            fmt.Sprintf("client-%d", clientSeq.Add(1)),
		subscriptions: make(map[string]bool),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

func (h *Hub) removeClientSubscriptions(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, subs := range h.subscriptions {
		delete(subs, client)
		if len(subs) == 0 {
			delete(h.subscriptions, id)
		}
	}
}
