package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/service"
)

// UserKey is the gin context key under which the authenticated user is
// stored.
const UserKey = "currentUser"

// RequireAuth validates the bearer token and loads the authenticated user
// into the request context.
func RequireAuth(authSvc service.AuthService, userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, "Not authenticated")
			return
		}

		userID, err := authSvc.ResolveToken(token)
		if err != nil {
			abortUnauthorized(c, apperror.DetailOf(err))
			return
		}

		user, err := userSvc.GetByID(userID)
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}
		if !user.IsActive {
			err := apperror.Authorization("Inactive user")
			c.AbortWithStatusJSON(apperror.HTTPStatus(err), dto.ErrorResponse{
				Detail: apperror.DetailOf(err),
				Code:   apperror.CodeOf(err),
			})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Detail: detail,
		Code:   "AUTHENTICATION_ERROR",
	})
}
