package notification

import (
	"encoding/json"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
)

// Estados de la conexión push.
const (
	StateDisconnected = "disconnected"
	StateConnecting   = "connecting"
	StateConnected    = "connected"
)

// Eventos entrantes que el canal traduce a notificaciones.
const (
	EventNewNotification  = "new_notification"
	EventLeaveRequest     = "leave_request"
	EventDriverAssignment = "driver_assignment"
)

// wireEvent mensaje del canal en ambas direcciones.
type wireEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// identityEvent registro de identidad emitido al conectar (addUser, setup).
type identityEvent struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// Handler recibe cada notificación entrante ya decodificada.
type Handler func(event string, n dto.NotificationResponse)

// Channel conexión push persistente ligada a un user id. Una sola conexión
// por sesión; Connect y Close son las únicas mutaciones. No implementa
// backoff propio: si la conexión muere queda Disconnected y el dueño decide
// reconectar.
type Channel struct {
	mu      sync.Mutex
	baseURL string
	handler Handler
	conn    *websocket.Conn
	state   string
	done    chan struct{}
}

// NewChannel construye el canal apuntando a la URL base del servidor
// (http[s]://host:port); el esquema se traduce a ws[s] al conectar.
func NewChannel(baseURL string, handler Handler) *Channel {
	return &Channel{baseURL: baseURL, handler: handler, state: StateDisconnected}
}

// Connect abre la conexión para el usuario dado, emite los eventos de
// identidad addUser y setup y lanza la lectura en una goroutine.
func (ch *Channel) Connect(userID string) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.state != StateDisconnected {
		return nil
	}
	ch.state = StateConnecting

	u, err := url.Parse(ch.baseURL)
	if err != nil {
		ch.state = StateDisconnected
		return err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/ws"
	u.RawQuery = "userId=" + url.QueryEscape(userID)

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		ch.state = StateDisconnected
		return err
	}

	// Registro de identidad: el servidor enruta los pushes por user id.
	for _, ev := range []string{"addUser", "setup"} {
		if err := conn.WriteJSON(identityEvent{Event: ev, Data: userID}); err != nil {
			_ = conn.Close()
			ch.state = StateDisconnected
			return err
		}
	}

	ch.conn = conn
	ch.state = StateConnected
	ch.done = make(chan struct{})
	go ch.readLoop(conn, ch.done)
	return nil
}

// Close cierra la conexión. Idempotente.
func (ch *Channel) Close() {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.conn != nil {
		_ = ch.conn.Close()
		ch.conn = nil
	}
	ch.state = StateDisconnected
}

// State estado actual de la conexión.
func (ch *Channel) State() string {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.state
}

// Done se cierra cuando la conexión muere; el dueño puede volver a llamar
// a Connect. Nil si nunca se conectó.
func (ch *Channel) Done() <-chan struct{} {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.done
}

// readLoop decodifica los eventos entrantes y los entrega al handler. Los
// eventos que no son de notificación se ignoran.
func (ch *Channel) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer func() {
		ch.mu.Lock()
		if ch.conn == conn {
			ch.conn = nil
			ch.state = StateDisconnected
		}
		ch.mu.Unlock()
		_ = conn.Close()
		close(done)
	}()

	for {
		var ev wireEvent
		if err := conn.ReadJSON(&ev); err != nil {
			return
		}
		switch ev.Event {
		case EventNewNotification, EventLeaveRequest, EventDriverAssignment:
			var n dto.NotificationResponse
			if err := json.Unmarshal(ev.Data, &n); err != nil {
				continue
			}
			if ch.handler != nil {
				ch.handler(ev.Event, n)
			}
		}
	}
}
