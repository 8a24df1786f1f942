package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"paju/constants"
	"paju/response"
)

// parseID đọc :id trên path, trả false và ghi 400 nếu không hợp lệ
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// menuTypeQuery đọc ?menuType=, rỗng là không lọc
func menuTypeQuery(c *gin.Context) (*constants.MenuType, bool) {
	raw := strings.ToLower(strings.TrimSpace(c.Query("menuType")))
	if raw == "" {
		return nil, true
	}
	m := constants.MenuType(raw)
	if !m.Valid() {
		response.BadRequest(c, "Menu type must be breakfast, lunch or dinner")
		return nil, false
	}
	return &m, true
}

// bindJSON bind body, lỗi thì trả 400 với message của validator
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.ValidationError(c, err.Error())
		return false
	}
	return true
}
