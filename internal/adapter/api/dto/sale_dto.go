package dto

import (
	"time"

	"github.com/panisul/gestao/internal/domain/sale"
)

// SaleRequest representa a requisição de registro de venda. O registro
// chega completo, com ID e instante de criação já atribuídos pela sessão
// que o produziu. As referências a cliente e produto não são validadas
// contra as demais coleções.
type SaleRequest struct {
	ID          string     `json:"id" binding:"required"`
	ClientID    string     `json:"clientId" binding:"required"`
	ProductName string     `json:"productName" binding:"required"`
	Quantity    int        `json:"quantity" binding:"required,gt=0"`
	PaymentType string     `json:"paymentType" binding:"required,oneof=avistapix avistadinheiro prazo"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID          string           `json:"id"`
	ClientID    string           `json:"clientId"`
	ProductName string           `json:"productName"`
	Quantity    int              `json:"quantity"`
	PaymentType sale.PaymentType `json:"paymentType"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ToDomain converte a requisição para a entidade de domínio
func (r SaleRequest) ToDomain() sale.Sale {
	return sale.Sale{
		ID:          r.ID,
		ClientID:    r.ClientID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		PaymentType: sale.PaymentType(r.PaymentType),
		DueDate:     r.DueDate,
		CreatedAt:   r.CreatedAt,
	}
}

// ToSaleResponse converte a entidade de domínio para a resposta
func ToSaleResponse(s sale.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		ClientID:    s.ClientID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		PaymentType: s.PaymentType,
		DueDate:     s.DueDate,
		CreatedAt:   s.CreatedAt,
	}
}

// ToSaleResponseList converte uma lista de vendas para a resposta
func ToSaleResponseList(sales []sale.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
