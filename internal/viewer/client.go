package viewer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"backend-lumashare/internal/gallery"
)

// HTTPFetcher loads gallery pages from the listing endpoint. A zero Token
// fetches as an anonymous viewer.
type HTTPFetcher struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func (f *HTTPFetcher) FetchPage(ctx context.Context, filter Filter, page, pageSize int) ([]gallery.Item, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	switch filter {
	case FilterMine:
		q.Set("mine", "true")
	case FilterSharedWithMe:
		q.Set("shared_with_me", "true")
	}

	endpoint := strings.TrimRight(f.BaseURL, "/") + "/gallery?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.Token != "" {
		req.Header.Set("Authorization", "Bearer "+f.Token)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gallery listing returned %d", resp.StatusCode)
	}

	var items []gallery.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}
