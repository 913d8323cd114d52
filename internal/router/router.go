package router

import (
	"time"

	"github.com/pindranil/waste-wise-report/config"
	"github.com/pindranil/waste-wise-report/internal/domain"
	"github.com/pindranil/waste-wise-report/internal/handler"
	"github.com/pindranil/waste-wise-report/internal/middleware"
	"github.com/pindranil/waste-wise-report/internal/service"
	"github.com/pindranil/waste-wise-report/internal/store"
	"github.com/pindranil/waste-wise-report/internal/ws"
	"github.com/pindranil/waste-wise-report/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

func Setup(cfg *config.Config, st *store.Store, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Services; notifications double as the fan-out sink for the rest.
	notifSvc := service.NewNotificationService(st)
	alertSvc := service.NewAlertService(st, notifSvc)
	formSvc := service.NewFormService(st, notifSvc)
	msgSvc := service.NewMessageService(st, notifSvc)
	authSvc := service.NewAuthService(cfg, st)

	chatHub := ws.NewChatHub()

	authHandler := handler.NewAuthHandler(authSvc)
	alertHandler := handler.NewAlertHandler(alertSvc)
	formHandler := handler.NewFormHandler(formSvc)
	messageHandler := handler.NewMessageHandler(msgSvc)
	notificationHandler := handler.NewNotificationHandler(notifSvc)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.RequireRole(domain.RoleAdmin)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)

		alerts := api.Group("/alerts")
		alerts.Use(authMw)
		{
			alerts.GET("", alertHandler.List)
			alerts.POST("", alertHandler.Create)
			alerts.GET("/:id", alertHandler.Get)
			alerts.PATCH("/:id", adminMw, alertHandler.UpdateStatus)
			alerts.POST("/:id/form", adminMw, formHandler.SendForm)
			alerts.POST("/:id/form-response", formHandler.SubmitResponse)
			alerts.GET("/:id/messages", messageHandler.List)
			alerts.POST("/:id/messages", messageHandler.Send)
		}

		api.GET("/form-types", authMw, formHandler.ListTypes)

		api.GET("/notifications", authMw, notificationHandler.List)
		api.PUT("/notifications/:id/read", authMw, notificationHandler.MarkRead)
		api.PUT("/notifications/read-all", authMw, notificationHandler.MarkAllRead)

		api.POST("/uploads/alert-image", authMw, uploadHandler.UploadAlertImage)
	}

	r.GET("/ws/chat", handler.UpgradeChatWS(&cfg.JWT, chatHub, alertSvc, msgSvc))

	return r
}
