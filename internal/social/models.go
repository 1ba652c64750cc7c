package social

import "time"

// Like rows are unique per (gallery_item_id, user_id); the constraint
// lives on the table so concurrent toggles cannot double-insert.
type Like struct {
	ID            string    `json:"id"`
	GalleryItemID string    `json:"gallery_item_id"`
	UserID        string    `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type Comment struct {
	ID            string    `json:"id"`
	GalleryItemID string    `json:"gallery_item_id"`
	UserID        string    `json:"user_id"`
	Content       string    `json:"content"`
	AuthorName    string    `json:"author_name,omitempty"`
	AuthorEmail   string    `json:"author_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
