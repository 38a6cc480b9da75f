package recordstore_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/panisul/gestao/internal/adapter/api/controller"
	"github.com/panisul/gestao/internal/adapter/api/route"
	"github.com/panisul/gestao/internal/adapter/recordstore"
	"github.com/panisul/gestao/internal/adapter/repository"
	"github.com/panisul/gestao/internal/domain/product"
	"github.com/panisul/gestao/internal/domain/sale"
	"github.com/panisul/gestao/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	l := logger.NewNopLogger()
	controllers := route.Controllers{
		Product: controller.NewProductController(repository.NewMemoryProductRepository(), l),
		Client:  controller.NewClientController(repository.NewMemoryClientRepository(), l),
		Sale:    controller.NewSaleController(repository.NewMemorySaleRepository(), l),
		Swap:    controller.NewSwapController(repository.NewMemorySwapRepository(), l),
	}
	route.SetupRoutes(router, "/api/v1", controllers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestProductRoundTrip(t *testing.T) {
	server := newTestServer(t)
	c := recordstore.NewClient(server.URL + "/api/v1")
	ctx := context.Background()

	list, err := c.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, c.CreateProduct(ctx, product.Product{Name: "Pão Francês", DailyStock: 120}))
	require.NoError(t, c.CreateProduct(ctx, product.Product{Name: "Baguete", DailyStock: 25}))

	list, err = c.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Pão Francês", list[0].Name)
	assert.Equal(t, 120, list[0].DailyStock)
	assert.Equal(t, "Baguete", list[1].Name)
}

func TestSaleRoundTripKeepsFields(t *testing.T) {
	server := newTestServer(t)
	c := recordstore.NewClient(server.URL + "/api/v1")
	ctx := context.Background()

	due := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	s := sale.Sale{
		ID:          "1756000000000-ab12cd34",
		ClientID:    "c-1",
		ProductName: "Pão Francês",
		Quantity:    80,
		PaymentType: sale.PaymentDeferred,
		DueDate:     &due,
		CreatedAt:   time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.CreateSale(ctx, s))

	list, err := c.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, s.ID, list[0].ID)
	assert.Equal(t, sale.PaymentDeferred, list[0].PaymentType)
	require.NotNil(t, list[0].DueDate)
	assert.True(t, list[0].DueDate.Equal(due))
}

func TestCreateReportsRejectedRecord(t *testing.T) {
	server := newTestServer(t)
	c := recordstore.NewClient(server.URL + "/api/v1")

	// Venda sem forma de pagamento: a API rejeita com 400 e o cliente
	// devolve o status inesperado como erro
	err := c.CreateSale(context.Background(), sale.Sale{
		ID:          "v-1",
		ClientID:    "c-1",
		ProductName: "Pão Francês",
		Quantity:    5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestListAgainstUnreachableServer(t *testing.T) {
	c := recordstore.NewClient("http://127.0.0.1:1/api/v1")

	_, err := c.ListProducts(context.Background())
	assert.Error(t, err)
}
