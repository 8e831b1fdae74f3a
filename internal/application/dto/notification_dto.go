package dto

import "time"

// NotificationResponse notificación tal como la consume el panel y como
// viaja por el canal websocket. Las claves replican el payload que espera el panel web.
type NotificationResponse struct {
	ID            string    `json:"_id"`
	Recipient     string    `json:"recipient"`
	Sender        string    `json:"sender,omitempty"`
	Type          string    `json:"type"`
	Message       string    `json:"message"`
	Token         string    `json:"token,omitempty"`
	RelatedEntity string    `json:"relatedEntity,omitempty"`
	Seen          bool      `json:"seen"`
	CreatedAt     time.Time `json:"createdAt"`
}
