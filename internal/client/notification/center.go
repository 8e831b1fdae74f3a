package notification

import (
	"context"
	"sync"
	"time"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/client/api"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
)

// Tiempos del popup transitorio: se oculta a los 4.5s y se limpia del todo
// a los 5s, sin intervención del usuario.
const (
	popupHideAfter  = 4500 * time.Millisecond
	popupClearAfter = 5 * time.Second
)

// Center bandeja de notificaciones en memoria del usuario logueado. Las
// escrituras llegan de dos fuentes, el fetch inicial y los pushes del canal,
// y se aplican en el orden en que resuelven sus callbacks: si un push llega
// entre el arranque del fetch y su resolución, la escritura que resuelve
// última gana y el push puede perderse transitoriamente. Es una carrera
// conocida del panel web y se conserva tal cual; el backlog persistido
// la corrige en el siguiente fetch.
type Center struct {
	mu     sync.Mutex
	api    *api.Client
	userID string
	list   []dto.NotificationResponse

	popup        *dto.NotificationResponse
	popupVisible bool
	hideTimer    *time.Timer
	clearTimer   *time.Timer
	hideAfter    time.Duration
	clearAfter   time.Duration

	lastErr string
	closed  bool
}

// NewCenter construye la bandeja para el usuario dado.
func NewCenter(apiClient *api.Client, userID string) *Center {
	return &Center{
		api:        apiClient,
		userID:     userID,
		hideAfter:  popupHideAfter,
		clearAfter: popupClearAfter,
	}
}

// HandleEvent aplica un push entrante: si el destinatario es el usuario
// actual, antepone la notificación (más reciente primero) y muestra el
// popup transitorio. Implementa el Handler del Channel.
func (c *Center) HandleEvent(_ string, n dto.NotificationResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || n.Recipient != c.userID {
		return
	}

	c.list = append([]dto.NotificationResponse{n}, c.list...)
	c.showPopupLocked(n)
}

// FetchInitial trae el backlog del servidor y reemplaza la lista entera,
// sin merge con lo que hubiera en memoria.
func (c *Center) FetchInitial(ctx context.Context) error {
	items, err := c.api.Notifications(ctx)
	if err != nil {
		c.setErr(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.list = items
	return nil
}

// MarkSeen marca como vista en el servidor y, si responde bien, voltea el
// flag local. Un fallo deja el estado local intacto, sin reintento: volver
// a marcar es idempotente.
func (c *Center) MarkSeen(ctx context.Context, id string) error {
	if err := c.api.MarkSeen(ctx, id); err != nil {
		c.setErr(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	for i := range c.list {
		if c.list[i].ID == id {
			c.list[i].Seen = true
			break
		}
	}
	return nil
}

// Resolve acepta o rechaza una notificación accionable llamando al endpoint
// que corresponde a su tipo. Si el servidor responde bien la quita de la
// lista; si falla queda donde estaba con el error registrado, para que el
// usuario reintente.
func (c *Center) Resolve(ctx context.Context, id, decision string) error {
	c.mu.Lock()
	var target *dto.NotificationResponse
	for i := range c.list {
		if c.list[i].ID == id {
			n := c.list[i]
			target = &n
			break
		}
	}
	c.mu.Unlock()
	if target == nil {
		return nil
	}

	var err error
	switch target.Type {
	case entity.NotifAccountValidation:
		err = c.api.ValidateDriver(ctx, target.Token, decision)
	case entity.NotifDriverAssignment:
		err = c.api.ValidateTrip(ctx, target.RelatedEntity, decision)
	case entity.NotifLeaveRequest:
		err = c.api.ValidateLeave(ctx, target.Token, decision)
	default:
		return nil
	}
	if err != nil {
		c.setErr(err)
		return err
	}

	c.removeLocal(id)
	return nil
}

// Delete borra en el servidor y después localmente. Sin borrado optimista:
// si la llamada falla la notificación sigue en la lista.
func (c *Center) Delete(ctx context.Context, id string) error {
	if err := c.api.DeleteNotification(ctx, id); err != nil {
		c.setErr(err)
		return err
	}
	c.removeLocal(id)
	return nil
}

// Notifications copia de la lista actual, más reciente primero.
func (c *Center) Notifications() []dto.NotificationResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]dto.NotificationResponse, len(c.list))
	copy(out, c.list)
	return out
}

// Popup devuelve la notificación del popup y si sigue visible.
func (c *Center) Popup() (*dto.NotificationResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.popup == nil {
		return nil, false
	}
	n := *c.popup
	return &n, c.popupVisible
}

// LastError último error de red registrado, vacío si no hubo.
func (c *Center) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Close detiene los timers y descarta cualquier actualización posterior.
// Las llamadas en vuelo no se abortan; sus resultados ya no se aplican.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.hideTimer != nil {
		c.hideTimer.Stop()
	}
	if c.clearTimer != nil {
		c.clearTimer.Stop()
	}
	c.popup = nil
	c.popupVisible = false
}

func (c *Center) showPopupLocked(n dto.NotificationResponse) {
	if c.hideTimer != nil {
		c.hideTimer.Stop()
	}
	if c.clearTimer != nil {
		c.clearTimer.Stop()
	}

	c.popup = &n
	c.popupVisible = true
	c.hideTimer = time.AfterFunc(c.hideAfter, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed {
			c.popupVisible = false
		}
	})
	c.clearTimer = time.AfterFunc(c.clearAfter, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed {
			c.popup = nil
		}
	})
}

func (c *Center) removeLocal(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	for i := range c.list {
		if c.list[i].ID == id {
			c.list = append(c.list[:i], c.list[i+1:]...)
			return
		}
	}
}

func (c *Center) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.lastErr = err.Error()
	}
}
