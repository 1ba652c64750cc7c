package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backend-lumashare/internal/db"

	"github.com/google/uuid"
)

const DefaultPageSize = 20

var ErrNotFound = errors.New("item not found")

type Service struct {
	db       db.Querier
	pageSize int
}

func NewService(q db.Querier) *Service {
	return &Service{db: q, pageSize: DefaultPageSize}
}

// SetDefaultPageSize overrides the page size used when a request does not
// name one.
func (s *Service) SetDefaultPageSize(n int) {
	if n > 0 {
		s.pageSize = n
	}
}

const itemColumns = `gi.id, gi.user_id, gi.type, gi.src, gi.title, gi.description, gi.category,
		       gi.tags, gi.visibility, gi.shared_with, gi.created_at,
		       (SELECT COUNT(*) FROM likes l WHERE l.gallery_item_id = gi.id) AS like_count,
		       (SELECT COUNT(*) FROM comments c WHERE c.gallery_item_id = gi.id) AS comment_count`

// List returns one page of items the viewer may see, newest first with a
// stable id tie-break. The visibility predicate lives in the query itself
// so offsets count only visible rows and a short page really means the
// end of the data.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Item, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = s.pageSize
	}

	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.SharedWithMe {
		v := arg(q.ViewerID)
		conds = append(conds, fmt.Sprintf(
			"gi.visibility = 'restricted' AND %s = ANY(gi.shared_with) AND gi.user_id <> %s", v, v))
	} else if q.ViewerID == "" {
		conds = append(conds, "gi.visibility = 'public'")
	} else {
		v := arg(q.ViewerID)
		conds = append(conds, fmt.Sprintf(
			"(gi.visibility = 'public' OR gi.user_id = %s OR (gi.visibility = 'restricted' AND %s = ANY(gi.shared_with)))", v, v))
	}

	if q.OwnerID != "" {
		conds = append(conds, "gi.user_id = "+arg(q.OwnerID))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM gallery_items gi
		WHERE %s
		ORDER BY gi.created_at DESC, gi.id DESC
		LIMIT %s OFFSET %s
	`, itemColumns, strings.Join(conds, " AND "), arg(q.PageSize), arg((q.Page-1)*q.PageSize))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.UserID, &it.Type, &it.Src, &it.Title, &it.Description,
			&it.Category, &it.Tags, &it.Visibility, &it.SharedWith, &it.CreatedAt,
			&it.LikeCount, &it.CommentCount); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// Get returns a single item with counts, or ErrNotFound when the item does
// not exist or the viewer may not see it.
func (s *Service) Get(ctx context.Context, id, viewerID string) (Item, error) {
	row := s.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM gallery_items gi
		WHERE gi.id = $1
	`, itemColumns), id)

	var it Item
	if err := row.Scan(&it.ID, &it.UserID, &it.Type, &it.Src, &it.Title, &it.Description,
		&it.Category, &it.Tags, &it.Visibility, &it.SharedWith, &it.CreatedAt,
		&it.LikeCount, &it.CommentCount); err != nil {
		return Item{}, ErrNotFound
	}
	if !Visible(it, viewerID) {
		return Item{}, ErrNotFound
	}
	return it, nil
}

// Create stores a new item owned by the given user. Visibility defaults
// to public and shared_with is normalized before the insert.
func (s *Service) Create(ctx context.Context, input Item) (Item, error) {
	input.ID = uuid.NewString()
	if input.Visibility == "" {
		input.Visibility = VisibilityPublic
	}
	input.SharedWith = NormalizeSharedWith(input.Visibility, input.SharedWith)

	row := s.db.QueryRow(ctx, `
		INSERT INTO gallery_items (id, user_id, type, src, title, description, category, tags, visibility, shared_with)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at
	`, input.ID, input.UserID, input.Type, input.Src, input.Title, input.Description,
		input.Category, input.Tags, input.Visibility, input.SharedWith)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Item{}, err
	}
	return input, nil
}

// UpdateItems applies a batch of patches, one result per id. Ownership is
// checked per item and a failed id never aborts the rest of the batch.
func (s *Service) UpdateItems(ctx context.Context, ownerID string, patches []ItemPatch) []BatchResult {
	results := make([]BatchResult, 0, len(patches))
	for _, patch := range patches {
		if patch.ID == "" {
			results = append(results, BatchResult{Error: "missing id"})
			continue
		}
		results = append(results, s.updateOne(ctx, ownerID, patch))
	}
	return results
}

func (s *Service) updateOne(ctx context.Context, ownerID string, patch ItemPatch) BatchResult {
	row := s.db.QueryRow(ctx, `
		SELECT user_id, title, description, category, tags, visibility, shared_with
		FROM gallery_items WHERE id = $1
	`, patch.ID)

	var current Item
	if err := row.Scan(&current.UserID, &current.Title, &current.Description,
		&current.Category, &current.Tags, &current.Visibility, &current.SharedWith); err != nil {
		return BatchResult{ID: patch.ID, Error: "item not found"}
	}
	if current.UserID != ownerID {
		return BatchResult{ID: patch.ID, Error: "unauthorized"}
	}

	if patch.Title != "" {
		current.Title = patch.Title
	}
	if patch.Description != "" {
		current.Description = patch.Description
	}
	if patch.Category != "" {
		current.Category = patch.Category
	}
	if patch.Tags != nil {
		current.Tags = patch.Tags
	}
	if patch.Visibility != "" {
		current.Visibility = patch.Visibility
	}
	if patch.SharedWith != nil {
		current.SharedWith = patch.SharedWith
	}
	current.SharedWith = NormalizeSharedWith(current.Visibility, current.SharedWith)

	_, err := s.db.Exec(ctx, `
		UPDATE gallery_items
		SET title=$2, description=$3, category=$4, tags=$5, visibility=$6, shared_with=$7
		WHERE id=$1
	`, patch.ID, current.Title, current.Description, current.Category,
		current.Tags, current.Visibility, current.SharedWith)
	if err != nil {
		return BatchResult{ID: patch.ID, Error: err.Error()}
	}
	return BatchResult{ID: patch.ID, Success: true}
}

// DeleteItems removes the given ids, one result per id, owner-only.
func (s *Service) DeleteItems(ctx context.Context, ownerID string, ids []string) []BatchResult {
	results := make([]BatchResult, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			results = append(results, BatchResult{Error: "missing id"})
			continue
		}

		var itemOwner string
		if err := s.db.QueryRow(ctx, `
			SELECT user_id FROM gallery_items WHERE id = $1
		`, id).Scan(&itemOwner); err != nil {
			results = append(results, BatchResult{ID: id, Error: "item not found"})
			continue
		}
		if itemOwner != ownerID {
			results = append(results, BatchResult{ID: id, Error: "unauthorized"})
			continue
		}

		if _, err := s.db.Exec(ctx, `DELETE FROM gallery_items WHERE id=$1`, id); err != nil {
			results = append(results, BatchResult{ID: id, Error: err.Error()})
			continue
		}
		results = append(results, BatchResult{ID: id, Success: true})
	}
	return results
}
