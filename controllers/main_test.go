package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"rentora/app"
	"rentora/config"
	"rentora/db"
	"rentora/models"
	"rentora/routes"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	repo   *db.Repo
	cfg    config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.Config{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		StatsCacheTTL: time.Minute,
		WebOrigin:     "http://localhost",
	}

	r := gin.New()
	a := &app.App{Router: r, DB: conn, RDB: rdb, Config: cfg, Log: zerolog.Nop()}
	routes.RegisterRoutes(r, a)

	return &testEnv{router: r, repo: db.NewRepo(conn), cfg: cfg}
}

// newUser inserts a user directly and returns it with a signed token.
func (e *testEnv) newUser(t *testing.T, role string) (*models.User, string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{
		ID:       uuid.NewString(),
		Name:     "Test User",
		Email:    uuid.NewString() + "@example.com",
		Password: string(hashed),
		Role:     role,
		Address:  "Jl. Test No. 1",
		Phone:    "08123456789",
	}
	require.NoError(t, e.repo.CreateUser(context.Background(), u))

	token, err := app.SignToken(e.cfg, u)
	require.NoError(t, err)
	return u, token
}

func (e *testEnv) newCategory(t *testing.T, title, price string) *models.GoodsCategory {
	t.Helper()
	cat := &models.GoodsCategory{ID: uuid.NewString(), Title: title, Price: price}
	require.NoError(t, e.repo.CreateCategory(context.Background(), cat))
	return cat
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func goodsBody(categoryID string) map[string]any {
	return map[string]any{
		"vendorBranchId": uuid.NewString(),
		"categoryId":     categoryID,
		"name":           "mini excavator",
		"quantity":       2,
		"dateIn":         "2024-01-01",
		"dateOut":        "2024-01-04",
		"paymentMethod":  "cash",
	}
}
