package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notewyze/backend/config"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/repository"
	"github.com/notewyze/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*gin.Engine, service.AuthService, *model.User, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Profile{}))

	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.TokenLifetime = time.Hour

	userRepo := repository.NewUserRepository(db)
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo, repository.NewProfileRepository(db))

	user := &model.User{Email: "mw@example.com", FullName: "MW", HashedPassword: "x", IsActive: true}
	require.NoError(t, db.Create(user).Error)

	router := gin.New()
	router.GET("/protected", RequireAuth(authSvc, userSvc), func(c *gin.Context) {
		current := c.MustGet(UserKey).(*model.User)
		c.JSON(http.StatusOK, dto.NewResponse(current.Email, ""))
	})
	return router, authSvc, user, db
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	router, authSvc, user, _ := setupAuthTest(t)

	token, err := authSvc.IssueToken(user.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mw@example.com")
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	router, _, _, _ := setupAuthTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	router, _, _, _ := setupAuthTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsInactiveUser(t *testing.T) {
	router, authSvc, user, db := setupAuthTest(t)

	token, err := authSvc.IssueToken(user.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Inactive user")
	assert.Contains(t, w.Body.String(), "AUTHORIZATION_ERROR")
}
