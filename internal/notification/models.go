package notification

import "time"

const (
	TypeLike    = "like"
	TypeComment = "comment"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Data      Data      `json:"data"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Data is the notification payload. Content is set for comment
// notifications only.
type Data struct {
	GalleryItemID string `json:"gallery_item_id"`
	ActorID       string `json:"actor_id"`
	ActorEmail    string `json:"actor_email"`
	Content       string `json:"content,omitempty"`
}
