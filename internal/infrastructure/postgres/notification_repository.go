package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Create persiste una nueva notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient, sender, type, message, token, related_entity, seen, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		n.ID, n.Recipient, n.Sender, n.Type, n.Message, n.Token, n.RelatedEntity, n.Seen, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID; nil si no existe.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `
		SELECT id, recipient, COALESCE(sender::text, ''), type, message, token, related_entity, seen, created_at
		FROM notifications WHERE id = $1`
	var n entity.Notification
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.Recipient, &n.Sender, &n.Type, &n.Message, &n.Token, &n.RelatedEntity, &n.Seen, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// ListByRecipient backlog del usuario, más recientes primero.
func (r *NotificationRepo) ListByRecipient(recipientID string) ([]*entity.Notification, error) {
	query := `
		SELECT id, recipient, COALESCE(sender::text, ''), type, message, token, related_entity, seen, created_at
		FROM notifications WHERE recipient = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var out []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(
			&n.ID, &n.Recipient, &n.Sender, &n.Type, &n.Message, &n.Token, &n.RelatedEntity, &n.Seen, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

// MarkSeen marca una notificación como vista (transición de una sola dirección).
func (r *NotificationRepo) MarkSeen(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE notifications SET seen = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark seen: %w", err)
	}
	return nil
}

// Delete elimina una notificación por ID.
func (r *NotificationRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// DeleteByToken elimina las notificaciones ligadas a un token de validación
// consumido, en todas las bandejas donde se duplicó.
func (r *NotificationRepo) DeleteByToken(token string) error {
	if token == "" {
		return nil
	}
	_, err := r.pool.Exec(context.Background(), `DELETE FROM notifications WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete notifications by token: %w", err)
	}
	return nil
}
