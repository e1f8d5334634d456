package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterBranchRoutes registra as rotas do módulo de filiais.
// Essas rotas não exigem o cabeçalho branch-id: são elas que administram
// as filiais.
func RegisterBranchRoutes(r *gin.RouterGroup, branchController *controller.BranchController) {
	branches := r.Group("/branches")
	branches.Use(auth.JWTAuthMiddleware())
	{
		branches.POST("", auth.RoleAuthMiddleware("admin", "owner"), branchController.Create)
		branches.GET("", branchController.List)
		branches.GET("/:id", branchController.GetByID)
		branches.PUT("/:id", auth.RoleAuthMiddleware("admin", "owner"), branchController.Update)
		branches.PATCH("/:id/status", auth.RoleAuthMiddleware("admin", "owner"), branchController.UpdateStatus)
	}
}
