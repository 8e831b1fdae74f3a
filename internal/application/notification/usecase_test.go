package notification

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
)

// fakeRepo repositorio en memoria para los tests del caso de uso.
type fakeRepo struct {
	items map[string]*entity.Notification
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]*entity.Notification{}}
}

func (r *fakeRepo) Create(n *entity.Notification) error {
	cp := *n
	r.items[n.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(id string) (*entity.Notification, error) {
	n, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeRepo) ListByRecipient(recipientID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.items {
		if n.Recipient == recipientID {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRepo) MarkSeen(id string) error {
	if n, ok := r.items[id]; ok {
		n.Seen = true
	}
	return nil
}

func (r *fakeRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) DeleteByToken(token string) error {
	for id, n := range r.items {
		if n.Token == token {
			delete(r.items, id)
		}
	}
	return nil
}

// fakePusher registra los pushes emitidos hacia el hub websocket.
type fakePusher struct {
	events []string
	notifs []*entity.Notification
}

func (p *fakePusher) Push(event string, n *entity.Notification) {
	p.events = append(p.events, event)
	p.notifs = append(p.notifs, n)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notify
// ──────────────────────────────────────────────────────────────────────────────

// Notify rellena id y fecha, persiste y empuja con el evento indicado.
func TestNotify_PersisteYEmpuja(t *testing.T) {
	repo := newFakeRepo()
	pusher := &fakePusher{}
	uc := NewUseCase(repo, pusher)

	n := &entity.Notification{
		Recipient: "u1",
		Type:      entity.NotifLeaveRequest,
		Message:   "nueva solicitud de congé",
		Token:     "tok-1",
	}
	require.NoError(t, uc.Notify("leave_request", n))

	assert.NotEmpty(t, n.ID, "se asigna un id")
	assert.False(t, n.CreatedAt.IsZero(), "se asigna la fecha")
	assert.Len(t, repo.items, 1, "queda persistida")

	require.Len(t, pusher.events, 1)
	assert.Equal(t, "leave_request", pusher.events[0])
	assert.Equal(t, n.ID, pusher.notifs[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

// El backlog sale más reciente primero y solo del destinatario pedido.
func TestList_OrdenYPropiedad(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUseCase(repo, &fakePusher{})

	old := &entity.Notification{ID: "vieja", Recipient: "u1", CreatedAt: time.Now().Add(-time.Hour)}
	recent := &entity.Notification{ID: "nueva", Recipient: "u1", CreatedAt: time.Now()}
	ajena := &entity.Notification{ID: "ajena", Recipient: "u2", CreatedAt: time.Now()}
	for _, n := range []*entity.Notification{old, recent, ajena} {
		require.NoError(t, repo.Create(n))
	}

	out, err := uc.List("u1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "nueva", out[0].ID)
	assert.Equal(t, "vieja", out[1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkSeen / Delete: propiedad y transición de una sola dirección
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkSeen_SoloElDestinatario(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUseCase(repo, &fakePusher{})
	require.NoError(t, repo.Create(&entity.Notification{ID: "n1", Recipient: "u1"}))

	err := uc.MarkSeen("intruso", "n1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, repo.items["n1"].Seen)

	require.NoError(t, uc.MarkSeen("u1", "n1"))
	assert.True(t, repo.items["n1"].Seen)

	// Repetir es un no-op, nunca vuelve a false
	require.NoError(t, uc.MarkSeen("u1", "n1"))
	assert.True(t, repo.items["n1"].Seen)
}

func TestMarkSeen_Desconocida(t *testing.T) {
	uc := NewUseCase(newFakeRepo(), &fakePusher{})
	assert.ErrorIs(t, uc.MarkSeen("u1", "no-existe"), domain.ErrNotFound)
}

func TestDelete_SoloElDestinatario(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUseCase(repo, &fakePusher{})
	require.NoError(t, repo.Create(&entity.Notification{ID: "n1", Recipient: "u1"}))

	assert.ErrorIs(t, uc.Delete("intruso", "n1"), domain.ErrForbidden)
	assert.Len(t, repo.items, 1)

	require.NoError(t, uc.Delete("u1", "n1"))
	assert.Empty(t, repo.items)
}

// DeleteByToken limpia todas las copias ligadas al token consumido.
func TestDeleteByToken_LimpiaTodasLasBandejas(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUseCase(repo, &fakePusher{})
	require.NoError(t, repo.Create(&entity.Notification{ID: "a", Recipient: "admin-1", Token: "tok-x"}))
	require.NoError(t, repo.Create(&entity.Notification{ID: "b", Recipient: "admin-2", Token: "tok-x"}))
	require.NoError(t, repo.Create(&entity.Notification{ID: "c", Recipient: "admin-1", Token: "otro"}))

	require.NoError(t, uc.DeleteByToken("tok-x"))
	assert.Len(t, repo.items, 1)
	assert.Contains(t, repo.items, "c")
}
