package swap

import "context"

// Repository define as operações de registro de trocas (append-only)
type Repository interface {
	// List retorna todas as trocas na ordem em que foram registradas
	List(ctx context.Context) ([]Swap, error)

	// Append acrescenta uma troca à coleção
	Append(ctx context.Context, s Swap) error
}
