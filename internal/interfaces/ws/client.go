package ws

import (
	"time"

	"github.com/gofiber/contrib/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// client una conexión websocket de un usuario.
type client struct {
	hub    *Hub
	userID string
	conn   *websocket.Conn
	send   chan Event
}

// Handler handler Fiber del endpoint /ws. El user id llega por query
// (?userId=) como hace el panel web; los eventos addUser/setup entrantes
// se aceptan y reconfirman la identidad de la conexión.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		userID := conn.Query("userId")
		if userID == "" {
			_ = conn.WriteJSON(Event{Event: "error", Data: "userId requerido"})
			_ = conn.Close()
			return
		}

		c := &client{hub: h, userID: userID, conn: conn, send: make(chan Event, sendBuffer)}
		h.register <- c

		go c.writePump()
		c.readPump() // bloquea hasta que la conexión muere
	}
}

// readPump consume los eventos entrantes (addUser, setup) y detecta el
// cierre de la conexión.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var ev Event
		if err := c.conn.ReadJSON(&ev); err != nil {
			return
		}
		switch ev.Event {
		case "addUser", "setup":
			// Identidad ya fijada por query; los eventos del cliente solo
			// confirman el registro.
		default:
			c.hub.log.Debug().Str("event", ev.Event).Msg("evento entrante ignorado")
		}
	}
}

// writePump serializa los pushes hacia la conexión y mantiene el keepalive.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(ev); err != nil {
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
