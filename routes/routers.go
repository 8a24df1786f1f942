package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"paju/config"
	"paju/constants"
	"paju/controllers"
	_ "paju/docs"
	middlewares "paju/middleware"
)

func SetupRoutes(router *gin.Engine, app *config.App) {
	menuController := controllers.NewMenuController(app.Menu)
	hoursController := controllers.NewHoursController(app.Hours)
	announcementController := controllers.NewAnnouncementController(app.Announcements)
	userController := controllers.NewUserController(app.Users)
	authController := controllers.NewAuthController(app.Auth, app.Config.IsProduction())
	uploadController := controllers.NewUploadController(app.Uploads, app.Menu, app.UploadSource)
	var cachePing func(ctx context.Context) error
	if app.Redis != nil {
		cachePing = app.CachePing
	}
	systemController := controllers.NewSystemController(app.Store, app.Seeder, cachePing, app.Images.Name())

	cms := middlewares.AuthMiddleware(app.Auth, constants.RoleAdmin, constants.RoleEditor)
	admin := middlewares.AuthMiddleware(app.Auth, constants.RoleAdmin)

	router.GET("/ping", controllers.Ping)
	router.GET("/healthz", systemController.Health)
	if app.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{})))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ws", func(c *gin.Context) {
		_ = app.Melody.HandleRequest(c.Writer, c.Request)
	})
	if app.LocalUploads != nil {
		router.Static(app.LocalUploads.URLPrefix(), app.LocalUploads.Dir())
	}

	api := router.Group("/api")

	// giờ mở cửa
	api.GET("/restaurant/hours", hoursController.GetHours)
	api.GET("/restaurant/hours/display", hoursController.GetDisplay)
	api.PUT("/restaurant/hours/:id", cms, hoursController.UpdateHours)

	// menu
	api.GET("/menu/items", menuController.GetItems)
	api.GET("/menu/items/search", menuController.SearchItems)
	api.GET("/menu/items/export", cms, menuController.ExportItems)
	api.POST("/menu/items", cms, menuController.CreateItem)
	api.PUT("/menu/items/reorder", cms, menuController.ReorderItems)
	api.PUT("/menu/items/:id", cms, menuController.UpdateItem)
	api.DELETE("/menu/items/:id", cms, menuController.DeleteItem)
	api.GET("/menu/display", menuController.GetDisplay)

	api.GET("/menu/categories", menuController.GetCategories)
	api.POST("/menu/categories", cms, menuController.CreateCategory)
	api.PUT("/menu/categories/reorder", cms, menuController.ReorderCategories)
	api.PUT("/menu/categories/:id", cms, menuController.UpdateCategory)
	api.DELETE("/menu/categories/:id", cms, menuController.DeleteCategory)

	api.GET("/menu/status", menuController.GetStatus)
	api.GET("/menu/enabled", menuController.GetEnabled)
	api.PUT("/menu/status", cms, menuController.UpdateStatus)

	// thông báo
	api.GET("/announcements/active", announcementController.GetActive)
	api.GET("/announcements", cms, announcementController.GetAnnouncements)
	api.POST("/announcements", cms, announcementController.CreateAnnouncement)
	api.PUT("/announcements/:id", cms, announcementController.UpdateAnnouncement)
	api.DELETE("/announcements/:id", cms, announcementController.DeleteAnnouncement)

	// auth
	api.POST("/auth/login", app.LoginLimiter.Handler(), authController.Login)
	api.POST("/auth/logout", authController.Logout)
	api.GET("/auth/verify", authController.Verify)

	api.POST("/upload", cms, uploadController.Upload)

	// chỉ admin
	api.GET("/users", admin, userController.GetUsers)
	api.POST("/users", admin, userController.CreateUser)
	api.PUT("/users/:id", admin, userController.UpdateUser)
	api.DELETE("/users/:id", admin, userController.DeleteUser)
	api.POST("/init/seed", admin, systemController.Seed)
	api.POST("/tools/migrate-uploads", admin, uploadController.MigrateUploads)
}
