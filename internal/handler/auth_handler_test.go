package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ltm_world/internal/model"
	"ltm_world/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubAuthService returns canned results for handler tests.
type stubAuthService struct {
	user  *model.User
	token string
	err   error
}

func (s *stubAuthService) Register(_ context.Context, _, _ string) (*model.User, string, error) {
	return s.user, s.token, s.err
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*model.User, string, error) {
	return s.user, s.token, s.err
}

func (s *stubAuthService) FindByIdentity(_ context.Context, _ string) (*model.User, error) {
	return s.user, s.err
}

func newAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuthHandler(svc)
	noopAuth := func(c *gin.Context) { c.Next() }
	h.RegisterAuthRoutes(router.Group("/api/v1"), noopAuth)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{
		user:  &model.User{ID: 1, Identity: "a@x.com", Role: model.RoleUser},
		token: "signed-token",
	}
	router := newAuthRouter(svc)

	w := postJSON(router, "/api/v1/auth/register", `{"identity":"a@x.com","password":"pw1secret"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")
}

func TestAuthHandler_Register_DuplicateIdentity(t *testing.T) {
	svc := &stubAuthService{err: service.ErrUserAlreadyExists}
	router := newAuthRouter(svc)

	// Duplicate identity is a client error, same status as malformed input.
	w := postJSON(router, "/api/v1/auth/register", `{"identity":"a@x.com","password":"pw1secret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestAuthHandler_Register_MalformedInput(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	w := postJSON(router, "/api/v1/auth/register", `{"identity":"not-an-email","password":"pw1secret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{err: service.ErrInvalidCredentials}
	router := newAuthRouter(svc)

	w := postJSON(router, "/api/v1/auth/login", `{"identity":"a@x.com","password":"wrongpw"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrInvalidCredentials.Error())
}
