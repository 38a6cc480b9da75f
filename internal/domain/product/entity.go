package product

// Product representa um produto acabado no estoque do dia. O nome é a
// chave única do produto dentro da coleção; o estoque diário pode ficar
// negativo quando vendas e trocas ultrapassam a produção registrada —
// comportamento permissivo herdado do fluxo operacional atual.
type Product struct {
	Name             string `json:"name"`                       // Nome único do produto
	DailyStock       int    `json:"dailyStock"`                 // Quantidade disponível no estoque diário
	TechnicalSheetID string `json:"technicalSheetId,omitempty"` // Ficha técnica associada, se existir
}

// New cria um produto com o estoque inicial informado
func New(name string, dailyStock int) Product {
	return Product{
		Name:       name,
		DailyStock: dailyStock,
	}
}
