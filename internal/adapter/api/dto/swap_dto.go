package dto

import (
	"time"

	"github.com/panisul/gestao/internal/domain/swap"
)

// SwapRequest representa a requisição de registro de troca
type SwapRequest struct {
	ID              string    `json:"id" binding:"required"`
	ClientID        string    `json:"clientId" binding:"required"`
	ProductName     string    `json:"productName" binding:"required"`
	Quantity        int       `json:"quantity" binding:"required,gt=0"`
	ReturnedProduct string    `json:"returnedProduct"`
	Reason          string    `json:"reason"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SwapResponse representa a resposta de troca
type SwapResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"clientId"`
	ProductName     string    `json:"productName"`
	Quantity        int       `json:"quantity"`
	ReturnedProduct string    `json:"returnedProduct,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToDomain converte a requisição para a entidade de domínio
func (r SwapRequest) ToDomain() swap.Swap {
	return swap.Swap{
		ID:              r.ID,
		ClientID:        r.ClientID,
		ProductName:     r.ProductName,
		Quantity:        r.Quantity,
		ReturnedProduct: r.ReturnedProduct,
		Reason:          r.Reason,
		CreatedAt:       r.CreatedAt,
	}
}

// ToSwapResponse converte a entidade de domínio para a resposta
func ToSwapResponse(s swap.Swap) SwapResponse {
	return SwapResponse{
		ID:              s.ID,
		ClientID:        s.ClientID,
		ProductName:     s.ProductName,
		Quantity:        s.Quantity,
		ReturnedProduct: s.ReturnedProduct,
		Reason:          s.Reason,
		CreatedAt:       s.CreatedAt,
	}
}

// ToSwapResponseList converte uma lista de trocas para a resposta
func ToSwapResponseList(swaps []swap.Swap) []SwapResponse {
	out := make([]SwapResponse, 0, len(swaps))
	for _, s := range swaps {
		out = append(out, ToSwapResponse(s))
	}
	return out
}
