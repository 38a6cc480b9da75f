package repository

import (
	"context"
	"sync"

	"github.com/panisul/gestao/internal/domain/product"
)

// MemoryProductRepository mantém a coleção de produtos em memória de
// processo. A coleção é construída uma vez por processo e injetada nos
// handlers; reiniciar o processo zera os registros (não há durabilidade).
type MemoryProductRepository struct {
	mu       sync.Mutex
	products []product.Product
}

// NewMemoryProductRepository cria um repositório de produtos vazio
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

// List retorna uma cópia de todos os produtos na ordem de inserção
func (r *MemoryProductRepository) List(ctx context.Context) ([]product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]product.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// Append acrescenta um produto à coleção
func (r *MemoryProductRepository) Append(ctx context.Context, p product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
	return nil
}
