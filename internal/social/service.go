package social

import (
	"context"
	"errors"
	"strings"

	"backend-lumashare/internal/db"
	"backend-lumashare/internal/notification"

	"github.com/google/uuid"
)

var ErrEmptyContent = errors.New("content must not be empty")

type Service struct {
	db            db.Querier
	notifications *notification.Service
}

func NewService(q db.Querier, notifications *notification.Service) *Service {
	return &Service{db: q, notifications: notifications}
}

// ToggleLike flips the like state for (itemID, userID) and reports the
// resulting state. Either branch notifies the item's owner when the actor
// is somebody else.
func (s *Service) ToggleLike(ctx context.Context, itemID, userID, userEmail string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM likes WHERE gallery_item_id=$1 AND user_id=$2
	`, itemID, userID)
	if err != nil {
		return false, err
	}

	liked := false
	if tag.RowsAffected() == 0 {
		_, err := s.db.Exec(ctx, `
			INSERT INTO likes (id, gallery_item_id, user_id)
			VALUES ($1,$2,$3)
			ON CONFLICT (gallery_item_id, user_id) DO NOTHING
		`, uuid.NewString(), itemID, userID)
		if err != nil {
			return false, err
		}
		liked = true
	}

	s.notifyOwner(ctx, itemID, userID, userEmail, notification.TypeLike, "")
	return liked, nil
}

// AddComment stores a trimmed comment and notifies the item's owner.
func (s *Service) AddComment(ctx context.Context, itemID, userID, userEmail, content string) (Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Comment{}, ErrEmptyContent
	}

	comment := Comment{
		ID:            uuid.NewString(),
		GalleryItemID: itemID,
		UserID:        userID,
		Content:       content,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO comments (id, gallery_item_id, user_id, content)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, comment.ID, comment.GalleryItemID, comment.UserID, comment.Content)
	if err := row.Scan(&comment.CreatedAt); err != nil {
		return Comment{}, err
	}

	s.notifyOwner(ctx, itemID, userID, userEmail, notification.TypeComment, content)
	return comment, nil
}

// Comments returns an item's comments, newest first, with the commenter's
// display identity joined in.
func (s *Service) Comments(ctx context.Context, itemID string) ([]Comment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT c.id, c.gallery_item_id, c.user_id, c.content, c.created_at,
		       COALESCE(p.username, ''), COALESCE(u.email, '')
		FROM comments c
		LEFT JOIN profiles p ON p.id = c.user_id
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.gallery_item_id=$1
		ORDER BY c.created_at DESC
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.GalleryItemID, &c.UserID, &c.Content, &c.CreatedAt,
			&c.AuthorName, &c.AuthorEmail); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// notifyOwner is the shared tail of every social mutation: look up the
// item's owner and record a notification unless the actor owns the item.
// Notification failures never fail the mutation itself.
func (s *Service) notifyOwner(ctx context.Context, itemID, actorID, actorEmail, kind, content string) {
	var ownerID string
	if err := s.db.QueryRow(ctx, `
		SELECT user_id FROM gallery_items WHERE id=$1
	`, itemID).Scan(&ownerID); err != nil {
		return
	}
	if ownerID == actorID {
		return
	}

	_, _ = s.notifications.Create(ctx, notification.Notification{
		UserID: ownerID,
		Type:   kind,
		Data: notification.Data{
			GalleryItemID: itemID,
			ActorID:       actorID,
			ActorEmail:    actorEmail,
			Content:       content,
		},
	})
}
