package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/dto"
	productdomain "github.com/panisul/gestao/internal/domain/product"
	"github.com/panisul/gestao/pkg/logger"
	"github.com/panisul/gestao/pkg/metrics"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List retorna todos os produtos registrados
// @Summary Listar produtos
// @Description Retorna todos os produtos na ordem em que foram registrados
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.productRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponseList(products))
}

// Create registra um novo produto
// @Summary Registrar produto
// @Description Acrescenta um produto completo à coleção e o devolve inalterado
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p := req.ToDomain()
	if err := c.productRepo.Append(ctx, p); err != nil {
		c.logger.Error("erro ao registrar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar produto", err.Error()))
		return
	}

	metrics.RecordsAppended.WithLabelValues("products").Inc()
	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}
