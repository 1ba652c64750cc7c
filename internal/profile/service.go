package profile

import (
	"context"
	"time"

	"backend-lumashare/internal/db"
)

type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Service struct {
	db db.Querier
}

func NewService(q db.Querier) *Service {
	return &Service{db: q}
}

// Upsert writes the profile row keyed by the user id. Callers are expected
// to have verified that the id belongs to the authenticated user.
func (s *Service) Upsert(ctx context.Context, p Profile) (Profile, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO profiles (id, username, bio, avatar_url, updated_at)
		VALUES ($1,$2,$3,$4, now())
		ON CONFLICT (id) DO UPDATE
		SET username=EXCLUDED.username, bio=EXCLUDED.bio, avatar_url=EXCLUDED.avatar_url, updated_at=now()
		RETURNING updated_at
	`, p.ID, p.Username, p.Bio, p.AvatarURL)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, username, bio, avatar_url, updated_at
		FROM profiles WHERE id=$1
	`, id)
	var p Profile
	if err := row.Scan(&p.ID, &p.Username, &p.Bio, &p.AvatarURL, &p.UpdatedAt); err != nil {
		return Profile{}, err
	}
	return p, nil
}
