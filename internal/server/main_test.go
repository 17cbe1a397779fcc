package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/service"
	"devconnect/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	// Disables per-route rate limiting in handler tests.
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

// setupAPITestServer builds a Server over an in-memory SQLite database with
// the full route table registered. Prometheus and Redis stay disabled so
// repeated setups in one test binary do not collide.
func setupAPITestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	s := &Server{
		config:         &config.Config{JWTSecret: "test_secret", TokenTTLHours: 1, Env: "test"},
		db:             db,
		tokens:         token.NewService("test_secret", time.Hour),
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		postRepo:       postRepo,
		profileService: service.NewProfileService(profileRepo, userRepo),
		postService:    service.NewPostService(postRepo, userRepo),
	}

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, db
}

// createAuthedUser persists a user and returns it along with a Bearer header value.
func createAuthedUser(t *testing.T, s *Server, db *gorm.DB, name, email string) (*models.User, string) {
	t.Helper()

	user := &models.User{Name: name, Email: email, Password: "hashed", Avatar: "https://example.com/a.png"}
	require.NoError(t, db.Create(user).Error)

	tokenString, err := s.tokens.Issue(user.ID)
	require.NoError(t, err)

	return user, "Bearer " + tokenString
}

// doJSON performs a request with an optional JSON body and Authorization header.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, auth string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
