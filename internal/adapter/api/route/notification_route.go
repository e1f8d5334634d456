package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registra as rotas de notificações
func RegisterNotificationRoutes(r *gin.RouterGroup, notificationController *controller.NotificationController) {
	notifications := r.Group("/notifications")
	notifications.Use(auth.JWTAuthMiddleware())
	{
		notifications.GET("", notificationController.List)
		notifications.POST("/refresh", notificationController.Refresh)
		notifications.PATCH("/:id/read", notificationController.MarkRead)
		notifications.PATCH("/read-all", notificationController.MarkAllRead)
	}
}
