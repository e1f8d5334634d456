package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterLoyaltyRoutes registra as rotas do programa de fidelidade
func RegisterLoyaltyRoutes(r *gin.RouterGroup, loyaltyController *controller.LoyaltyController) {
	loyalty := r.Group("/loyalty")
	loyalty.Use(auth.JWTAuthMiddleware())
	{
		loyalty.GET("/levels", loyaltyController.ListLevels)
		loyalty.POST("/levels", auth.RoleAuthMiddleware("admin", "owner"), loyaltyController.CreateLevel)
		loyalty.GET("/rewards", loyaltyController.ListRewards)
		loyalty.POST("/rewards", auth.RoleAuthMiddleware("admin", "owner"), loyaltyController.CreateReward)
		loyalty.PUT("/rewards/:id", auth.RoleAuthMiddleware("admin", "owner"), loyaltyController.UpdateReward)
		loyalty.POST("/redeem", loyaltyController.Redeem)
	}
}
