package profile

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend-lumashare/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pashagolub/pgxmock/v3"
)

func signTestToken(t *testing.T, userID, email string) string {
	t.Helper()
	claims := auth.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newProfileApp(t *testing.T, mock pgxmock.PgxPoolIface) *fiber.App {
	t.Helper()
	app := fiber.New()
	RegisterRoutes(app.Group("/profiles"), NewService(mock), auth.JWTMiddleware("secret"))
	return app
}

func TestUpsertHandlerOverridesID(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	// the id in the body is ignored, the token identity wins
	mock.ExpectQuery(`INSERT INTO profiles`).
		WithArgs("u1", "irfan", "climber", "").
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	app := newProfileApp(t, mock)
	payload := `{"id":"somebody-else","username":"irfan","bio":"climber"}`
	req := httptest.NewRequest(http.MethodPut, "/profiles/", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "u1", "u1@example.com"))

	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("upsert status: %v %d", err, resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var p Profile
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != "u1" {
		t.Fatalf("expected token identity, got %q", p.ID)
	}
}

func TestUpsertHandlerRequiresAuth(t *testing.T) {
	app := newProfileApp(t, nil)
	req := httptest.NewRequest(http.MethodPut, "/profiles/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v %d", err, resp.StatusCode)
	}
}

func TestGetHandlerPublic(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, username, bio, avatar_url, updated_at`).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "bio", "avatar_url", "updated_at"}).
			AddRow("u1", "irfan", "", "", time.Now()))

	app := newProfileApp(t, mock)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles/u1", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("get status: %v %d", err, resp.StatusCode)
	}
}

func TestGetHandlerMissing(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, username, bio, avatar_url, updated_at`).
		WithArgs("ghost").
		WillReturnError(errProfile)

	app := newProfileApp(t, mock)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles/ghost", nil))
	if err != nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %v %d", err, resp.StatusCode)
	}
}
