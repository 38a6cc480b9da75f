package repository

import (
	"context"
	"sync"

	"github.com/panisul/gestao/internal/domain/client"
)

// MemoryClientRepository mantém a coleção de clientes em memória de processo
type MemoryClientRepository struct {
	mu      sync.Mutex
	clients []client.Client
}

// NewMemoryClientRepository cria um repositório de clientes vazio
func NewMemoryClientRepository() *MemoryClientRepository {
	return &MemoryClientRepository{}
}

// List retorna uma cópia de todos os clientes na ordem de inserção
func (r *MemoryClientRepository) List(ctx context.Context) ([]client.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]client.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}

// Append acrescenta um cliente à coleção
func (r *MemoryClientRepository) Append(ctx context.Context, c client.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, c)
	return nil
}
