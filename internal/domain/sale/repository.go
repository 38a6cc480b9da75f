package sale

import "context"

// Repository define as operações de registro de vendas. Vendas são
// imutáveis depois de criadas; a coleção é append-only.
type Repository interface {
	// List retorna todas as vendas na ordem em que foram registradas
	List(ctx context.Context) ([]Sale, error)

	// Append acrescenta uma venda à coleção
	Append(ctx context.Context, s Sale) error
}
