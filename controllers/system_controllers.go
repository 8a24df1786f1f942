package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"paju/dto"
	"paju/repository"
	"paju/response"
	"paju/services"
)

// SystemController gom các route vận hành: seed dữ liệu và health check
type SystemController struct {
	store     *repository.Store
	seeder    *services.Seeder
	cachePing func(ctx context.Context) error
	storage   string
}

func NewSystemController(store *repository.Store, seeder *services.Seeder, cachePing func(ctx context.Context) error, storage string) SystemController {
	return SystemController{store: store, seeder: seeder, cachePing: cachePing, storage: storage}
}

// Seed godoc
// @Summary      Insert default data into empty tables
// @Tags         system
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /api/init/seed [post]
func (u SystemController) Seed(c *gin.Context) {
	report, err := u.seeder.Seed(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessMessage(c, "Database initialized successfully", report)
}

// Health trả 503 khi store không phản hồi; cache lỗi chỉ báo degraded
func (u SystemController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := dto.HealthStatus{Status: "ok", Store: u.store.Backend, Cache: "disabled", Storage: u.storage}
	if err := u.store.Healthy(ctx); err != nil {
		status.Status = "unavailable"
		status.Store = u.store.Backend + ": " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response.Response{Code: 0, Mess: "Store unavailable", Data: status})
		return
	}
	if u.cachePing != nil {
		status.Cache = "redis"
		if err := u.cachePing(ctx); err != nil {
			status.Status = "degraded"
			status.Cache = "redis: " + err.Error()
		}
	}
	response.Success(c, status)
}

func Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
