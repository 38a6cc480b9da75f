package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/panisul/gestao/internal/domain/product"
	"github.com/panisul/gestao/internal/domain/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepositoryAppendAndList(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.Append(ctx, product.Product{Name: "Pão Francês", DailyStock: 100}))
	require.NoError(t, repo.Append(ctx, product.Product{Name: "Baguete", DailyStock: 20}))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Pão Francês", list[0].Name)
	assert.Equal(t, "Baguete", list[1].Name)
}

func TestListReturnsCopy(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, product.Product{Name: "Pão Francês", DailyStock: 100}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].DailyStock = -1

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, again[0].DailyStock)
}

func TestSaleRepositoryKeepsInsertionOrder(t *testing.T) {
	repo := NewMemorySaleRepository()
	ctx := context.Background()

	// 100 inclusões sequenciais: nenhuma perdida, nenhuma duplicada,
	// ordem de listagem igual à ordem de inclusão
	for i := 0; i < 100; i++ {
		s := sale.Sale{
			ID:          fmt.Sprintf("venda-%03d", i),
			ClientID:    "cliente-1",
			ProductName: "Pão Francês",
			Quantity:    1,
			PaymentType: sale.PaymentCash,
			CreatedAt:   time.Now(),
		}
		require.NoError(t, repo.Append(ctx, s))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 100)

	seen := make(map[string]bool)
	for i, s := range list {
		assert.Equal(t, fmt.Sprintf("venda-%03d", i), s.ID)
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}
