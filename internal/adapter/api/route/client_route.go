package route

import (
	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/controller"
)

// SetupClientRoutes configura as rotas para registros de clientes
func SetupClientRoutes(router *gin.RouterGroup, clientController *controller.ClientController) {
	clientRouter := router.Group("/clients")
	{
		clientRouter.GET("", clientController.List)
		clientRouter.POST("", clientController.Create)
	}
}
