package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registra as rotas de categorias e tamanhos
func RegisterCatalogRoutes(r *gin.RouterGroup, catalogController *controller.CatalogController) {
	categories := r.Group("/categories")
	categories.Use(auth.JWTAuthMiddleware())
	{
		categories.POST("", catalogController.CreateCategory)
		categories.GET("", catalogController.ListCategories)
		categories.PUT("/:id", catalogController.UpdateCategory)
		categories.DELETE("/:id", catalogController.DeleteCategory)
	}

	sizes := r.Group("/sizes")
	sizes.Use(auth.JWTAuthMiddleware())
	{
		sizes.POST("", catalogController.CreateSize)
		sizes.GET("", catalogController.ListSizes)
		sizes.PUT("/:id", catalogController.UpdateSize)
		sizes.DELETE("/:id", catalogController.DeleteSize)
	}
}
