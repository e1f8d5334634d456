package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterSettingsRoutes registra as rotas de configurações da loja
func RegisterSettingsRoutes(r *gin.RouterGroup, settingsController *controller.SettingsController) {
	settings := r.Group("/settings")
	settings.Use(auth.JWTAuthMiddleware())
	{
		settings.GET("", settingsController.Get)
		settings.PUT("", auth.RoleAuthMiddleware("admin", "owner"), settingsController.Save)
	}
}
