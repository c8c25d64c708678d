package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/boxfit/gym-scheduler/internal/config"
	"github.com/boxfit/gym-scheduler/internal/handlers"
)

func newAuthRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret"}
	h := handlers.NewAuthHandler(gdb, cfg)

	r := gin.New()
	r.POST("/api/auth/login", h.Login)

	return r, mock
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "approved"}).
			AddRow(1, "Ana", "ana@example.com", string(hash), "client", true)
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		r, mock := newAuthRouter(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WillReturnRows(userRow())

		w := postJSON(t, r, "/api/auth/login", gin.H{
			"email":    "ana@example.com",
			"password": "secret123",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
			User  struct {
				Email    string `json:"email"`
				Approved bool   `json:"approved"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "ana@example.com", resp.User.Email)
		assert.True(t, resp.User.Approved)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		r, mock := newAuthRouter(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WillReturnRows(userRow())

		w := postJSON(t, r, "/api/auth/login", gin.H{
			"email":    "ana@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_credentials")
	})

	t.Run("unknown email is rejected with the same error", func(t *testing.T) {
		r, mock := newAuthRouter(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := postJSON(t, r, "/api/auth/login", gin.H{
			"email":    "nobody@example.com",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_credentials")
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		w := postJSON(t, r, "/api/auth/login", gin.H{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
