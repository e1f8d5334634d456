package route

import (
	"github.com/dscosta/pos-confeitaria/internal/adapter/api/controller"
	"github.com/dscosta/pos-confeitaria/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	products.Use(auth.JWTAuthMiddleware())
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.GetByID)
		products.PUT("/:id", productController.Update)
		products.PATCH("/:id/stock", productController.UpdateStock)
		products.DELETE("/:id", productController.Delete)
	}
}
