package ws

import (
	"sync"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/notification"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/ports"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/pkg/logger"
)

var _ ports.NotificationPusher = (*Hub)(nil)

// Event mensaje del canal websocket, en ambas direcciones. El cliente emite
// addUser/setup con su user id; el servidor emite leave_request,
// new_notification y driver_assignment con la notificación como Data.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub registro de conexiones websocket vivas, indexadas por user id. Un
// usuario puede tener varias pestañas abiertas; cada una es un client.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}

	register   chan *client
	unregister chan *client
	log        *logger.Logger
}

// NewHub construye el hub. Run debe lanzarse en una goroutine propia.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		log:        log,
	}
}

// Run atiende altas y bajas de conexiones hasta que el proceso termina.
func (h *Hub) Run() {
	h.log.Info().Msg("hub websocket iniciado")
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.clients[c.userID] == nil {
				h.clients[c.userID] = make(map[*client]struct{})
			}
			h.clients[c.userID][c] = struct{}{}
			h.mu.Unlock()
			h.log.Debug().Str("user_id", c.userID).Msg("conexión registrada")

		case c := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[c.userID]; ok {
				if _, ok := conns[c]; ok {
					delete(conns, c)
					close(c.send)
					if len(conns) == 0 {
						delete(h.clients, c.userID)
					}
				}
			}
			h.mu.Unlock()
			h.log.Debug().Str("user_id", c.userID).Msg("conexión cerrada")
		}
	}
}

// Push envía la notificación a todas las conexiones vivas del destinatario.
// Si el destinatario no está conectado no pasa nada: el backlog persistido
// se recupera con GET /user/notifications.
func (h *Hub) Push(event string, n *entity.Notification) {
	payload := Event{Event: event, Data: notification.ToResponse(n)}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[n.Recipient] {
		select {
		case c.send <- payload:
		default:
			// Conexión saturada: se descarta el push, el backlog queda en DB.
			h.log.Warn().Str("user_id", n.Recipient).Msg("buffer de envío lleno, push descartado")
		}
	}
}

// Connected indica si el usuario tiene al menos una conexión viva.
func (h *Hub) Connected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}
