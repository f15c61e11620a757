// Package realtime pushes new notifications to signed in browsers over websockets.
package realtime

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Event is the frame written to the socket
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type client struct {
	accountID string
	conn      *websocket.Conn
	send      chan Event
}

// Hub tracks the open notification sockets of every account. An account may have
// several tabs open; each gets its own connection.
type Hub struct {
	rootDomain string
	upgrader   websocket.Upgrader

	mu      sync.Mutex
	clients map[string]map[*client]struct{}
}

// NewHub returns a Hub accepting browser origins under rootDomain
func NewHub(rootDomain string) *Hub {
	h := &Hub{
		rootDomain: rootDomain,
		clients:    make(map[string]map[*client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == h.rootDomain || strings.HasSuffix(host, "."+h.rootDomain)
}

// ServeWS upgrades the request of a signed in account and keeps the socket open
// until the client goes away
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if !s.Authenticated() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "unauthorized"}`))
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade error", "error", err, "accountId", s.AccountID)
		return
	}

	c := &client{accountID: s.AccountID, conn: conn, send: make(chan Event, sendBuffer)}
	h.register(c)
	zap.S().Debugw("notification socket connected", "accountId", s.AccountID)

	go h.writePump(c)
	h.readPump(c)
}

// Push sends n to every socket of accountID. It never blocks; a client whose buffer
// is full misses the event.
func (h *Hub) Push(accountID string, n models.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[accountID] {
		select {
		case c.send <- Event{Event: "new_notification", Data: n}:
		default:
			zap.S().Warnw("notification socket buffer full, dropping event", "accountId", accountID, "notificationId", n.ID)
		}
	}
}

// Connected returns the number of open sockets of accountID
func (h *Hub) Connected(accountID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[accountID])
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for accountID, set := range h.clients {
		for c := range set {
			close(c.send)
		}
		delete(h.clients, accountID)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.accountID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.accountID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.accountID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.accountID)
	}
}

// readPump discards client frames and answers pongs until the connection fails
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
		zap.S().Debugw("notification socket disconnected", "accountId", c.accountID)
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

// writePump is the only writer of c.conn
func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case ev, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(ev); err != nil {
				zap.S().Warnw("error sending notification", "error", err, "accountId", c.accountID)
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
