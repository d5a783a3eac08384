package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog_backend/internal/feature/users/domain/entity"
	"blog_backend/internal/feature/users/usecase"
	jwtmw "blog_backend/internal/platform/jwt"
)

// TestMain sets Gin to test mode before running the tests.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockUserUsecase is a mock implementation of the UserUsecase interface.
type mockUserUsecase struct {
	RegisterFunc func(ctx context.Context, name, email, password string) error
	CreateFunc   func(ctx context.Context, userType entity.UserType, name, email, password string) error
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
	ListFunc     func(ctx context.Context, requester entity.AuthUser) ([]entity.User, error)
}

func (m *mockUserUsecase) Register(ctx context.Context, name, email, password string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return nil
}

func (m *mockUserUsecase) Create(ctx context.Context, userType entity.UserType, name, email, password string) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userType, name, email, password)
	}
	return nil
}

func (m *mockUserUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", usecase.ErrInvalidCredentials
}

func (m *mockUserUsecase) List(ctx context.Context, requester entity.AuthUser) ([]entity.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, requester)
	}
	return nil, nil
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockRegister   func(ctx context.Context, name, email, password string) error
		expectedStatus int
	}{
		{
			name:           "success",
			requestBody:    gin.H{"name": "a", "email": "a@x.com", "password": "p"},
			mockRegister:   func(ctx context.Context, name, email, password string) error { return nil },
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "malformed email",
			requestBody:    gin.H{"name": "a", "email": "not-an-email", "password": "p"},
			mockRegister:   nil, // usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			requestBody:    gin.H{"name": "a", "email": "a@x.com"},
			mockRegister:   nil, // usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "duplicate email",
			requestBody: gin.H{"name": "a", "email": "a@x.com", "password": "p"},
			mockRegister: func(ctx context.Context, name, email, password string) error {
				return usecase.ErrEmailAlreadyUsed
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUserHandler(&mockUserUsecase{RegisterFunc: tt.mockRegister})
			r := gin.New()
			r.POST("/register", h.Register)

			w := performJSON(t, r, http.MethodPost, "/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_Register_DuplicateEmailMessage(t *testing.T) {
	h := NewUserHandler(&mockUserUsecase{
		RegisterFunc: func(ctx context.Context, name, email, password string) error {
			return usecase.ErrEmailAlreadyUsed
		},
	})
	r := gin.New()
	r.POST("/register", h.Register)

	w := performJSON(t, r, http.MethodPost, "/register", gin.H{"name": "c", "email": "a@x.com", "password": "p"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"EMAIL_ALREADY_USED"}`, w.Body.String())
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("success returns token", func(t *testing.T) {
		h := NewUserHandler(&mockUserUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
		})
		r := gin.New()
		r.POST("/login", h.Login)

		w := performJSON(t, r, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "p"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"signed-token"}`, w.Body.String())
	})

	t.Run("bad credentials return the uniform 401", func(t *testing.T) {
		h := NewUserHandler(&mockUserUsecase{})
		r := gin.New()
		r.POST("/login", h.Login)

		w := performJSON(t, r, http.MethodPost, "/login", gin.H{"email": "a@x.com", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"EMAIL_OR_PASSWORD_INCORRECT"}`, w.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		h := NewUserHandler(&mockUserUsecase{})
		r := gin.New()
		r.POST("/login", h.Login)

		w := performJSON(t, r, http.MethodPost, "/login", gin.H{"email": "a@x.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_List(t *testing.T) {
	users := []entity.User{
		{ID: 1, Name: "root", Email: "root@x.com", Type: entity.UserTypeAdmin},
		{ID: 2, Name: "alice", Email: "alice@x.com", Type: entity.UserTypeBlogger},
	}

	newRouter := func(auth entity.AuthUser, uc *mockUserUsecase) *gin.Engine {
		r := gin.New()
		r.GET("/users", func(c *gin.Context) {
			c.Set(jwtmw.ContextAuthUser, auth)
		}, NewUserHandler(uc).List)
		return r
	}

	t.Run("admin projection includes ids", func(t *testing.T) {
		r := newRouter(entity.AuthUser{ID: 1, Type: entity.UserTypeAdmin}, &mockUserUsecase{
			ListFunc: func(ctx context.Context, requester entity.AuthUser) ([]entity.User, error) {
				return users, nil
			},
		})

		w := performJSON(t, r, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Contains(t, got[0], "id")
	})

	t.Run("non-admin projection has no ids and no admins", func(t *testing.T) {
		r := newRouter(entity.AuthUser{ID: 2, Type: entity.UserTypeBlogger}, &mockUserUsecase{
			ListFunc: func(ctx context.Context, requester entity.AuthUser) ([]entity.User, error) {
				// The usecase filters: bloggers only.
				return users[1:], nil
			},
		})

		w := performJSON(t, r, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.NotContains(t, got[0], "id")
		assert.Equal(t, "alice", got[0]["name"])
	})

	t.Run("missing identity", func(t *testing.T) {
		r := gin.New()
		r.GET("/users", NewUserHandler(&mockUserUsecase{}).List)

		w := performJSON(t, r, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotType entity.UserType
		h := NewUserHandler(&mockUserUsecase{
			CreateFunc: func(ctx context.Context, userType entity.UserType, name, email, password string) error {
				gotType = userType
				return nil
			},
		})
		r := gin.New()
		r.POST("/users", h.Create)

		w := performJSON(t, r, http.MethodPost, "/users",
			gin.H{"type": "admin", "name": "root2", "email": "root2@x.com", "password": "p"})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, entity.UserTypeAdmin, gotType)
	})

	t.Run("unknown type rejected at binding", func(t *testing.T) {
		h := NewUserHandler(&mockUserUsecase{})
		r := gin.New()
		r.POST("/users", h.Create)

		w := performJSON(t, r, http.MethodPost, "/users",
			gin.H{"type": "superuser", "name": "x", "email": "x@x.com", "password": "p"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
