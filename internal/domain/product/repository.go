package product

import "context"

// Repository define as operações de registro de produtos. A coleção é
// estritamente append-only: não há atualização, remoção ou consulta por
// campo.
type Repository interface {
	// List retorna todos os produtos na ordem em que foram registrados
	List(ctx context.Context) ([]Product, error)

	// Append acrescenta um produto à coleção
	Append(ctx context.Context, p Product) error
}
