package viewer

import (
	"context"

	"backend-lumashare/internal/gallery"
)

// Filter is the owner-scoped listing mode of the feed.
type Filter int

const (
	FilterAll Filter = iota
	FilterMine
	FilterSharedWithMe
)

// Fetcher loads one page of the gallery for a filter. The HTTP client
// implements it against the listing endpoint; tests plug in a stub.
type Fetcher interface {
	FetchPage(ctx context.Context, filter Filter, page, pageSize int) ([]gallery.Item, error)
}

// Feed owns the accumulated item list, the page cursor and the selection
// for one gallery view. It is single-goroutine state, mirroring an
// event-driven UI loop; fetches are synchronous calls into the Fetcher.
type Feed struct {
	fetcher  Fetcher
	pageSize int

	items      []gallery.Item
	page       int
	filter     Filter
	loading    bool
	exhausted  bool
	generation int

	selection SelectionSet
}

// Snapshot is an immutable view of the feed for rendering.
type Snapshot struct {
	Items     []gallery.Item
	Page      int
	Filter    Filter
	Loading   bool
	Exhausted bool
	Selected  []string
}

func NewFeed(fetcher Fetcher, pageSize int) *Feed {
	if pageSize <= 0 {
		pageSize = gallery.DefaultPageSize
	}
	return &Feed{
		fetcher:   fetcher,
		pageSize:  pageSize,
		page:      1,
		selection: NewSelectionSet(),
	}
}

// Reset clears the accumulated items and selection, rewinds the cursor to
// page 1 and fetches the first page under the new filter. Any fetch still
// in flight is invalidated by bumping the generation, so its late result
// is discarded.
func (f *Feed) Reset(ctx context.Context, filter Filter) error {
	f.generation++
	f.items = nil
	f.page = 1
	f.filter = filter
	f.loading = false
	f.exhausted = false
	f.selection.Clear()
	return f.LoadMore(ctx)
}

// LoadMore fetches the next page and appends it. It is a no-op while a
// fetch is in flight or after the feed is exhausted. The feed is exhausted
// exactly when a page comes back shorter than the page size.
func (f *Feed) LoadMore(ctx context.Context) error {
	if f.loading || f.exhausted {
		return nil
	}

	gen := f.generation
	page := f.page
	f.loading = true
	items, err := f.fetcher.FetchPage(ctx, f.filter, page, f.pageSize)
	if gen != f.generation {
		// A Reset happened underneath this fetch; the response is stale.
		return nil
	}
	f.loading = false
	if err != nil {
		return err
	}

	f.items = append(f.items, items...)
	f.page++
	if len(items) < f.pageSize {
		f.exhausted = true
	}
	return nil
}

// Items returns the loaded items in display order.
func (f *Feed) Items() []gallery.Item {
	return f.items
}

func (f *Feed) Exhausted() bool { return f.exhausted }
func (f *Feed) Loading() bool   { return f.loading }
func (f *Feed) Filter() Filter  { return f.filter }

// Selection exposes the multi-select set of the current view.
func (f *Feed) Selection() *SelectionSet {
	return &f.selection
}

// MutationApplied clears the selection after a successful bulk edit or
// delete and drops the affected ids from the loaded list.
func (f *Feed) MutationApplied(deleted []string) {
	if len(deleted) > 0 {
		gone := make(map[string]struct{}, len(deleted))
		for _, id := range deleted {
			gone[id] = struct{}{}
		}
		kept := f.items[:0]
		for _, it := range f.items {
			if _, ok := gone[it.ID]; !ok {
				kept = append(kept, it)
			}
		}
		f.items = kept
	}
	f.selection.Clear()
}

// AdjustCounts applies an optimistic like/comment counter change to a
// loaded item; the authoritative values arrive with the next reload.
func (f *Feed) AdjustCounts(itemID string, likeDelta, commentDelta int) {
	for i := range f.items {
		if f.items[i].ID == itemID {
			f.items[i].LikeCount += likeDelta
			if f.items[i].LikeCount < 0 {
				f.items[i].LikeCount = 0
			}
			f.items[i].CommentCount += commentDelta
			return
		}
	}
}

// Snapshot copies the feed state for a pure render pass.
func (f *Feed) Snapshot() Snapshot {
	items := make([]gallery.Item, len(f.items))
	copy(items, f.items)
	return Snapshot{
		Items:     items,
		Page:      f.page,
		Filter:    f.filter,
		Loading:   f.loading,
		Exhausted: f.exhausted,
		Selected:  f.selection.IDs(),
	}
}
