package constants

import "time"

const (
	AuthCookieName = "auth-token"
	TokenTTL       = 24 * time.Hour
)

// Các key lưu trong gin.Context sau khi xác thực
const (
	CtxUserID    = "userID"
	CtxUserRole  = "userRole"
	CtxUsername  = "username"
	CtxRequestID = "requestId"
)
