package route

import (
	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/controller"
)

// SetupProductRoutes configura as rotas para registros de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	{
		productRouter.GET("", productController.List)
		productRouter.POST("", productController.Create)
	}
}
