package sale

import (
	"time"

	"github.com/panisul/gestao/pkg/identifier"
)

// PaymentType define a forma de pagamento de uma venda
type PaymentType string

const (
	PaymentPix      PaymentType = "avistapix"      // À vista (PIX)
	PaymentCash     PaymentType = "avistadinheiro" // À vista (Dinheiro)
	PaymentDeferred PaymentType = "prazo"          // A prazo, com data de vencimento
)

// IsValid informa se o valor corresponde a uma forma de pagamento conhecida
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentPix, PaymentCash, PaymentDeferred:
		return true
	}
	return false
}

// Sale representa uma venda. Vendas a prazo carregam a data de vencimento
// esperada em DueDate; o núcleo não rejeita uma venda a prazo sem
// vencimento — é responsabilidade de quem registra. As referências a
// cliente e produto são textuais e não são validadas contra as coleções.
type Sale struct {
	ID          string      `json:"id"`
	ClientID    string      `json:"clientId"`
	ProductName string      `json:"productName"`
	Quantity    int         `json:"quantity"`
	PaymentType PaymentType `json:"paymentType"`
	DueDate     *time.Time  `json:"dueDate,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// New cria uma venda com ID gerado e o instante atual
func New(clientID, productName string, quantity int, paymentType PaymentType, dueDate *time.Time) Sale {
	return Sale{
		ID:          identifier.New(),
		ClientID:    clientID,
		ProductName: productName,
		Quantity:    quantity,
		PaymentType: paymentType,
		DueDate:     dueDate,
		CreatedAt:   time.Now(),
	}
}
