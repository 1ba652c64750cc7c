package gallery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

var errGallery = errors.New("gallery failure")

func itemRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "type", "src", "title", "description", "category",
		"tags", "visibility", "shared_with", "created_at", "like_count", "comment_count",
	})
}

func TestListFirstPageAnonymous(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	created := time.Now()
	mock.ExpectQuery(`SELECT gi\.id, gi\.user_id`).
		WithArgs(20, 0).
		WillReturnRows(itemRows().
			AddRow("item-1", "u1", "image", "https://cdn/a.jpg", "A", "first", "landscape",
				[]string{"nature"}, "public", nil, created, 3, 1).
			AddRow("item-2", "u2", "video", "https://cdn/b.mp4", "B", "second", "video",
				[]string{"pets"}, "public", nil, created.Add(-time.Minute), 0, 0))

	svc := NewService(mock)
	items, err := svc.List(context.Background(), ListQuery{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].LikeCount != 3 || items[0].CommentCount != 1 {
		t.Fatalf("expected aggregate counts on first item")
	}
	if items[1].LikeCount != 0 || items[1].CommentCount != 0 {
		t.Fatalf("counts must be zero, never null")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPaginationOffset(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	// page 3 with size 10 starts at offset 20
	mock.ExpectQuery(`SELECT gi\.id, gi\.user_id`).
		WithArgs("viewer-1", 10, 20).
		WillReturnRows(itemRows())

	svc := NewService(mock)
	items, err := svc.List(context.Background(), ListQuery{ViewerID: "viewer-1", Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty page")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListOwnerAndSharedWithMeArgs(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT gi\.id, gi\.user_id`).
		WithArgs("u1", "u1", 20, 0).
		WillReturnRows(itemRows())
	mock.ExpectQuery(`SELECT gi\.id, gi\.user_id`).
		WithArgs("u2", 20, 0).
		WillReturnRows(itemRows().
			AddRow("item-r", "u1", "image", "https://cdn/r.jpg", "R", "", "art",
				[]string{}, "restricted", []string{"u2"}, time.Now(), 0, 0))

	svc := NewService(mock)
	if _, err := svc.List(context.Background(), ListQuery{ViewerID: "u1", OwnerID: "u1", Page: 1, PageSize: 20}); err != nil {
		t.Fatalf("mine listing: %v", err)
	}
	items, err := svc.List(context.Background(), ListQuery{ViewerID: "u2", SharedWithMe: true, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("shared-with-me listing: %v", err)
	}
	if len(items) != 1 || items[0].ID != "item-r" {
		t.Fatalf("expected the shared restricted item")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT gi\.id, gi\.user_id`).
		WithArgs(20, 0).
		WillReturnError(errGallery)

	svc := NewService(mock)
	if _, err := svc.List(context.Background(), ListQuery{Page: 1, PageSize: 20}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCreateNormalizesSharedWith(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	// public upload with a shared_with list: normalization fires before insert
	mock.ExpectQuery(`INSERT INTO gallery_items`).
		WithArgs(pgxmock.AnyArg(), "u1", "image", "https://cdn/a.jpg", "A", "desc", "landscape",
			[]string{"nature"}, "public", []string(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	svc := NewService(mock)
	item, err := svc.Create(context.Background(), Item{
		UserID:      "u1",
		Type:        "image",
		Src:         "https://cdn/a.jpg",
		Title:       "A",
		Description: "desc",
		Category:    "landscape",
		Tags:        []string{"nature"},
		Visibility:  VisibilityPublic,
		SharedWith:  []string{"u9"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.SharedWith != nil {
		t.Fatalf("expected normalized shared_with")
	}
	if item.ID == "" {
		t.Fatalf("expected generated id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateDefaultsVisibility(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO gallery_items`).
		WithArgs(pgxmock.AnyArg(), "u1", "video", "https://cdn/b.mp4", "", "", "",
			[]string(nil), "public", []string(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	svc := NewService(mock)
	item, err := svc.Create(context.Background(), Item{UserID: "u1", Type: "video", Src: "https://cdn/b.mp4"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Visibility != VisibilityPublic {
		t.Fatalf("expected public default")
	}
}

func TestGetNotVisible(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT gi\.id, gi\.user_id`).
		WithArgs("item-p").
		WillReturnRows(itemRows().
			AddRow("item-p", "u1", "image", "https://cdn/p.jpg", "P", "", "art",
				[]string{}, "private", nil, time.Now(), 0, 0))

	svc := NewService(mock)
	if _, err := svc.Get(context.Background(), "item-p", "u2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for invisible item, got %v", err)
	}
}

func TestGetVisible(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT gi\.id, gi\.user_id`).
		WithArgs("item-p").
		WillReturnRows(itemRows().
			AddRow("item-p", "u1", "image", "https://cdn/p.jpg", "P", "", "art",
				[]string{}, "private", nil, time.Now(), 2, 0))

	svc := NewService(mock)
	item, err := svc.Get(context.Background(), "item-p", "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item.LikeCount != 2 {
		t.Fatalf("expected like count")
	}
}

func TestUpdateItemsOwnershipAndNormalization(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	// item-1: owned, switches to public so shared_with normalizes away
	mock.ExpectQuery(`SELECT user_id, title, description, category, tags, visibility, shared_with`).
		WithArgs("item-1").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "title", "description", "category", "tags", "visibility", "shared_with"}).
			AddRow("u1", "Old", "old desc", "art", []string{"a"}, "restricted", []string{"u2"}))
	mock.ExpectExec(`UPDATE gallery_items`).
		WithArgs("item-1", "New", "old desc", "art", []string{"a"}, "public", []string(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	// item-2: owned by somebody else, no update runs
	mock.ExpectQuery(`SELECT user_id, title, description, category, tags, visibility, shared_with`).
		WithArgs("item-2").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "title", "description", "category", "tags", "visibility", "shared_with"}).
			AddRow("u9", "X", "", "", []string{}, "public", nil))

	// item-3: missing
	mock.ExpectQuery(`SELECT user_id, title, description, category, tags, visibility, shared_with`).
		WithArgs("item-3").
		WillReturnError(errGallery)

	svc := NewService(mock)
	results := svc.UpdateItems(context.Background(), "u1", []ItemPatch{
		{ID: "item-1", Title: "New", Visibility: "public"},
		{ID: "item-2", Title: "Hijack"},
		{ID: "item-3", Title: "Gone"},
		{Title: "No id"},
	})

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if !results[0].Success {
		t.Fatalf("expected item-1 success: %+v", results[0])
	}
	if results[1].Error != "unauthorized" {
		t.Fatalf("expected unauthorized for item-2, got %q", results[1].Error)
	}
	if results[2].Error != "item not found" {
		t.Fatalf("expected not found for item-3, got %q", results[2].Error)
	}
	if results[3].Error != "missing id" {
		t.Fatalf("expected missing id error, got %q", results[3].Error)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateItemsKeepsRestrictedList(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT user_id, title, description, category, tags, visibility, shared_with`).
		WithArgs("item-r").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "title", "description", "category", "tags", "visibility", "shared_with"}).
			AddRow("u1", "R", "", "art", []string{}, "public", nil))
	mock.ExpectExec(`UPDATE gallery_items`).
		WithArgs("item-r", "R", "", "art", []string{}, "restricted", []string{"u2", "u3"}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	svc := NewService(mock)
	results := svc.UpdateItems(context.Background(), "u1", []ItemPatch{
		{ID: "item-r", Visibility: "restricted", SharedWith: []string{"u2", "u3"}},
	})
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("expected success: %+v", results)
	}
}

func TestDeleteItemsBatch(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT user_id FROM gallery_items`).
		WithArgs("item-1").
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow("u1"))
	mock.ExpectExec(`DELETE FROM gallery_items`).
		WithArgs("item-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	mock.ExpectQuery(`SELECT user_id FROM gallery_items`).
		WithArgs("item-2").
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow("u9"))

	mock.ExpectQuery(`SELECT user_id FROM gallery_items`).
		WithArgs("item-3").
		WillReturnError(errGallery)

	svc := NewService(mock)
	results := svc.DeleteItems(context.Background(), "u1", []string{"item-1", "item-2", "item-3", ""})

	if len(results) != 4 {
		t.Fatalf("expected 4 results")
	}
	if !results[0].Success {
		t.Fatalf("expected item-1 deleted")
	}
	if results[1].Error != "unauthorized" {
		t.Fatalf("expected unauthorized for item-2")
	}
	if results[2].Error != "item not found" {
		t.Fatalf("expected not found for item-3")
	}
	if results[3].Error != "missing id" {
		t.Fatalf("expected missing id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteItemsExecError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT user_id FROM gallery_items`).
		WithArgs("item-1").
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow("u1"))
	mock.ExpectExec(`DELETE FROM gallery_items`).
		WithArgs("item-1").
		WillReturnError(errGallery)

	svc := NewService(mock)
	results := svc.DeleteItems(context.Background(), "u1", []string{"item-1"})
	if len(results) != 1 || results[0].Error == "" {
		t.Fatalf("expected per-id error")
	}
}

func TestListConfiguredDefaultPageSize(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT gi\.id, gi\.user_id`).
		WithArgs(50, 0).
		WillReturnRows(itemRows())

	svc := NewService(mock)
	svc.SetDefaultPageSize(50)
	if _, err := svc.List(context.Background(), ListQuery{Page: 1}); err != nil {
		t.Fatalf("list: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
