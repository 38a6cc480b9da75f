package client

import "context"

// Repository define as operações de registro de clientes (append-only)
type Repository interface {
	// List retorna todos os clientes na ordem em que foram registrados
	List(ctx context.Context) ([]Client, error)

	// Append acrescenta um cliente à coleção
	Append(ctx context.Context, c Client) error
}
