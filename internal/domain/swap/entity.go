package swap

import (
	"time"

	"github.com/panisul/gestao/pkg/identifier"
)

// Swap representa uma troca (devolução). Registra a quantidade devolvida
// e, opcionalmente, o produto entregue ao cliente no lugar. O campo
// Reason ajuda a acompanhar o motivo da troca.
type Swap struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"clientId"`
	ProductName     string    `json:"productName"`
	Quantity        int       `json:"quantity"`
	ReturnedProduct string    `json:"returnedProduct,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// New cria uma troca com ID gerado e o instante atual
func New(clientID, productName string, quantity int, returnedProduct, reason string) Swap {
	return Swap{
		ID:              identifier.New(),
		ClientID:        clientID,
		ProductName:     productName,
		Quantity:        quantity,
		ReturnedProduct: returnedProduct,
		Reason:          reason,
		CreatedAt:       time.Now(),
	}
}
