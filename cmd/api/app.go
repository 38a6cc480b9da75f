package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/controller"
	"github.com/panisul/gestao/internal/adapter/api/route"
	"github.com/panisul/gestao/internal/adapter/repository"
	"github.com/panisul/gestao/pkg/logger"
)

// App representa a API de registros e suas dependências. As coleções são
// mantidas em memória de processo: reiniciar a aplicação zera os
// registros, por desenho.
type App struct {
	router      *gin.Engine
	logger      logger.Logger
	productRepo *repository.MemoryProductRepository
	clientRepo  *repository.MemoryClientRepository
	saleRepo    *repository.MemorySaleRepository
	swapRepo    *repository.MemorySwapRepository
}

// NewApp cria uma nova instância do aplicativo
func NewApp() *App {
	l := logger.NewLogger()

	// Criar repositórios (uma coleção por tipo de registro, construídas
	// uma vez por processo e injetadas nos controllers)
	productRepo := repository.NewMemoryProductRepository()
	clientRepo := repository.NewMemoryClientRepository()
	saleRepo := repository.NewMemorySaleRepository()
	swapRepo := repository.NewMemorySwapRepository()

	// Criar controllers
	controllers := route.Controllers{
		Product: controller.NewProductController(productRepo, l),
		Client:  controller.NewClientController(clientRepo, l),
		Sale:    controller.NewSaleController(saleRepo, l),
		Swap:    controller.NewSwapController(swapRepo, l),
	}

	// Configurar router e middlewares globais
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
	}))

	route.SetupRoutes(router, basePath(), controllers)

	return &App{
		router:      router,
		logger:      l,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		saleRepo:    saleRepo,
		swapRepo:    swapRepo,
	}
}

// Start inicia o servidor HTTP
func (a *App) Start() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("API de registros ouvindo", "porta", port, "basePath", basePath())
	if err := a.router.Run(":" + port); err != nil {
		a.logger.Error("erro ao iniciar o servidor", "error", err)
		os.Exit(1)
	}
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

func basePath() string {
	if bp := os.Getenv("API_BASE_PATH"); bp != "" {
		return bp
	}
	return "/api/v1"
}
