package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"paju/constants"
	"paju/response"
	"paju/services"
)

// TokenFromRequest lấy token từ cookie auth-token, không có thì từ header Authorization
func TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(constants.AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// AuthMiddleware xử lý authentication, roles rỗng là chấp nhận mọi role
func AuthMiddleware(auth *services.AuthService, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := auth.Verify(c.Request.Context(), tokenString)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == user.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu thông tin user vào context
		c.Set(constants.CtxUserID, user.ID)
		c.Set(constants.CtxUserRole, user.Role)
		c.Set(constants.CtxUsername, user.Username)
		c.Next()
	}
}

// CurrentUserID trả về id của user đã xác thực, 0 nếu chưa có
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(constants.CtxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// ErrorHandler xử lý lỗi controller đẩy vào c.Errors mà chưa trả response
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			response.FromError(c, c.Errors.Last().Err)
		}
	}
}
