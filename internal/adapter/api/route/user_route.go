package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registra as rotas do módulo de usuários.
// Criação, alteração e desativação são restritas a administradores e donos.
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	users := r.Group("/users")
	users.Use(auth.JWTAuthMiddleware())
	{
		users.POST("", auth.RoleAuthMiddleware("admin", "owner"), userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.GetByID)
		users.PUT("/:id", auth.RoleAuthMiddleware("admin", "owner"), userController.Update)
		users.DELETE("/:id", auth.RoleAuthMiddleware("admin", "owner"), userController.Delete)
	}
}
