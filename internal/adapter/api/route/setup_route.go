package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/gin-gonic/gin"
)

// SetupSetupRoutes configura as rotas de configuração inicial do sistema
func SetupSetupRoutes(router *gin.RouterGroup, userController *controller.UserController) {
	setupRouter := router.Group("/setup")
	{
		// Cria o primeiro administrador; não requer autenticação enquanto
		// não existe nenhum usuário
		setupRouter.POST("/admin", userController.CreateFirstAdmin)
	}
}
