package notification

import (
	"context"
	"encoding/json"

	"backend-lumashare/internal/db"
	"backend-lumashare/internal/stream"

	"github.com/google/uuid"
)

// ListLimit caps the notification listing; older entries stay stored but
// are never returned.
const ListLimit = 30

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(q db.Querier, hub *stream.Hub) *Service {
	return &Service{db: q, hub: hub}
}

// Create stores a notification and pushes it to the recipient's live
// stream when one is connected.
func (s *Service) Create(ctx context.Context, n Notification) (Notification, error) {
	n.ID = uuid.NewString()
	data, err := json.Marshal(n.Data)
	if err != nil {
		return Notification{}, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO notifications (id, user_id, type, data)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, n.ID, n.UserID, n.Type, string(data))
	if err := row.Scan(&n.CreatedAt); err != nil {
		return Notification{}, err
	}

	if s.hub != nil {
		if payload, err := json.Marshal(n); err == nil {
			s.hub.Broadcast(n.UserID, payload)
		}
	}
	return n, nil
}

// List returns the user's notifications, newest first, capped at ListLimit.
func (s *Service) List(ctx context.Context, userID string) ([]Notification, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, type, data, is_read, created_at
		FROM notifications
		WHERE user_id=$1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Notification
	for rows.Next() {
		var n Notification
		var data []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &data, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &n.Data); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, nil
}

// MarkAllRead flips every unread notification of the user to read.
func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE notifications SET is_read=true
		WHERE user_id=$1 AND is_read=false
	`, userID)
	return err
}
