package dto

import "github.com/panisul/gestao/internal/domain/product"

// ProductRequest representa a requisição de registro de produto. O
// registro chega completo do chamador; o estoque diário pode ser zero ou
// negativo, então apenas o nome é obrigatório.
type ProductRequest struct {
	Name             string `json:"name" binding:"required"`
	DailyStock       int    `json:"dailyStock"`
	TechnicalSheetID string `json:"technicalSheetId"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	Name             string `json:"name"`
	DailyStock       int    `json:"dailyStock"`
	TechnicalSheetID string `json:"technicalSheetId,omitempty"`
}

// ToDomain converte a requisição para a entidade de domínio
func (r ProductRequest) ToDomain() product.Product {
	return product.Product{
		Name:             r.Name,
		DailyStock:       r.DailyStock,
		TechnicalSheetID: r.TechnicalSheetID,
	}
}

// ToProductResponse converte a entidade de domínio para a resposta
func ToProductResponse(p product.Product) ProductResponse {
	return ProductResponse{
		Name:             p.Name,
		DailyStock:       p.DailyStock,
		TechnicalSheetID: p.TechnicalSheetID,
	}
}

// ToProductResponseList converte uma lista de produtos para a resposta
func ToProductResponseList(products []product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
