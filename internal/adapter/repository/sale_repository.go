package repository

import (
	"context"
	"sync"

	"github.com/panisul/gestao/internal/domain/sale"
)

// MemorySaleRepository mantém a coleção de vendas em memória de processo
type MemorySaleRepository struct {
	mu    sync.Mutex
	sales []sale.Sale
}

// NewMemorySaleRepository cria um repositório de vendas vazio
func NewMemorySaleRepository() *MemorySaleRepository {
	return &MemorySaleRepository{}
}

// List retorna uma cópia de todas as vendas na ordem de inserção
func (r *MemorySaleRepository) List(ctx context.Context) ([]sale.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sale.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

// Append acrescenta uma venda à coleção
func (r *MemorySaleRepository) Append(ctx context.Context, s sale.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, s)
	return nil
}
