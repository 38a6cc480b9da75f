package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/dto"
	clientdomain "github.com/panisul/gestao/internal/domain/client"
	"github.com/panisul/gestao/pkg/logger"
	"github.com/panisul/gestao/pkg/metrics"
)

// ClientController gerencia as requisições relacionadas a clientes
type ClientController struct {
	clientRepo clientdomain.Repository
	logger     logger.Logger
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(clientRepo clientdomain.Repository, logger logger.Logger) *ClientController {
	return &ClientController{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List retorna todos os clientes registrados
// @Summary Listar clientes
// @Description Retorna todos os clientes na ordem em que foram registrados
// @Tags clients
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	clients, err := c.clientRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponseList(clients))
}

// Create registra um novo cliente
// @Summary Registrar cliente
// @Description Acrescenta um cliente completo à coleção, com o ID já atribuído pela sessão de origem
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cl := req.ToDomain()
	if err := c.clientRepo.Append(ctx, cl); err != nil {
		c.logger.Error("erro ao registrar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar cliente", err.Error()))
		return
	}

	metrics.RecordsAppended.WithLabelValues("clients").Inc()
	ctx.JSON(http.StatusCreated, dto.ToClientResponse(cl))
}
