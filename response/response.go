package response

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "paju/errors"
	"paju/repository"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data,omitempty"`
	Total *int        `json:"total,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// SuccessWithTotal trả về danh sách kèm tổng số bản ghi
func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, Response{
		Code:  1,
		Mess:  "Success",
		Data:  data,
		Total: &total,
	})
}

// SuccessMessage trả về response thành công với message riêng
func SuccessMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: message,
		Data: data,
	})
}

// Created trả về response tạo mới thành công (201)
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// Error trả về response lỗi với status tùy chọn
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Authentication required",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Insufficient permissions",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Not found",
	})
}

// ValidationError trả về response lỗi validation
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Conflict"
	}
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// TooManyRequests trả về response 429
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Response{
		Code: 0,
		Mess: "Too many requests, try again later",
	})
}

// FromError chọn status theo loại lỗi: AppError theo code, ErrNotFound 404, ErrDuplicate 409, còn lại 500
func FromError(c *gin.Context, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		Error(c, StatusFor(appErr.Code), appErr.Message)
		return
	}
	switch {
	case stderrors.Is(err, repository.ErrNotFound):
		NotFound(c)
	case stderrors.Is(err, repository.ErrDuplicate):
		Conflict(c, "Record already exists")
	default:
		ServerError(c)
	}
}

// StatusFor trả về HTTP status của một error code
func StatusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken, apperrors.ErrCodeMissingToken, apperrors.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case apperrors.ErrCodeUserInactive:
		return http.StatusForbidden
	case apperrors.ErrCodeTooManyAttempts:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeDBNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeUserExists, apperrors.ErrCodeDBDuplicate:
		return http.StatusConflict
	case apperrors.ErrCodeDBError, apperrors.ErrCodeStorage:
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
