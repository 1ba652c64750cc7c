package gallery

import "time"

const (
	VisibilityPublic     = "public"
	VisibilityPrivate    = "private"
	VisibilityRestricted = "restricted"
)

type Item struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Src          string    `json:"src"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Visibility   string    `json:"visibility"`
	SharedWith   []string  `json:"shared_with,omitempty"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListQuery selects one page of the gallery. ViewerID is empty for
// anonymous requests. OwnerID restricts to a single owner's items.
// SharedWithMe narrows to restricted items shared with the viewer,
// excluding the viewer's own.
type ListQuery struct {
	ViewerID     string
	OwnerID      string
	SharedWithMe bool
	Page         int
	PageSize     int
}

// ItemPatch is one entry of a batch update. Empty fields keep the stored
// value; Visibility changes re-run shared_with normalization.
type ItemPatch struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Visibility  string   `json:"visibility"`
	SharedWith  []string `json:"shared_with"`
}

// BatchResult reports the outcome for one id of a batch mutation.
type BatchResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}
