package repository

import (
	"context"
	"sync"

	"github.com/panisul/gestao/internal/domain/swap"
)

// MemorySwapRepository mantém a coleção de trocas em memória de processo
type MemorySwapRepository struct {
	mu    sync.Mutex
	swaps []swap.Swap
}

// NewMemorySwapRepository cria um repositório de trocas vazio
func NewMemorySwapRepository() *MemorySwapRepository {
	return &MemorySwapRepository{}
}

// List retorna uma cópia de todas as trocas na ordem de inserção
func (r *MemorySwapRepository) List(ctx context.Context) ([]swap.Swap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]swap.Swap, len(r.swaps))
	copy(out, r.swaps)
	return out, nil
}

// Append acrescenta uma troca à coleção
func (r *MemorySwapRepository) Append(ctx context.Context, s swap.Swap) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.swaps = append(r.swaps, s)
	return nil
}
