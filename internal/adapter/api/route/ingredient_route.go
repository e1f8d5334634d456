package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterIngredientRoutes registra as rotas do módulo de ingredientes
func RegisterIngredientRoutes(r *gin.RouterGroup, ingredientController *controller.IngredientController) {
	ingredients := r.Group("/ingredients")
	ingredients.Use(auth.JWTAuthMiddleware())
	{
		ingredients.POST("", ingredientController.Create)
		ingredients.GET("", ingredientController.List)
		ingredients.GET("/:id", ingredientController.GetByID)
		ingredients.PUT("/:id", ingredientController.Update)
		ingredients.POST("/:id/adjust", ingredientController.Adjust)
		ingredients.GET("/:id/history", ingredientController.History)
		ingredients.DELETE("/:id", ingredientController.Delete)
	}
}
