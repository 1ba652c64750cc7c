package storage

import (
	"context"
	"strings"

	"backend-lumashare/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db      db.Querier
	baseURL string
}

func NewService(q db.Querier, baseURL string) *Service {
	return &Service{db: q, baseURL: strings.TrimRight(baseURL, "/")}
}

// SaveObject records an uploaded object and returns its row id.
func (s *Service) SaveObject(ctx context.Context, userID, path, kind string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(ctx, `
		INSERT INTO storage_objects (id, user_id, path, kind)
		VALUES ($1,$2,$3,$4)
	`, id, userID, path, kind)
	if err != nil {
		return "", err
	}
	return id, nil
}

// PublicURL builds the externally reachable URL for a stored object path.
func (s *Service) PublicURL(path string) string {
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}
