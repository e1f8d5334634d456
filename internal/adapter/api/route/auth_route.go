package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes configura as rotas de autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// Rota de login (não requer autenticação)
		authRouter.POST("/login", authController.Login)
	}
}
