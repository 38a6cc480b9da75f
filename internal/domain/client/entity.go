package client

import "github.com/panisul/gestao/pkg/identifier"

// Client representa um cliente da padaria. A identificação legal
// (CPF/CNPJ) é opcional neste estágio; histórico de compras e trocas vive
// nas coleções de vendas e trocas, referenciado pelo ID do cliente.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	LegalID string `json:"legalId,omitempty"`
	Address string `json:"address,omitempty"`
}

// New cria um cliente com um ID gerado para a sessão
func New(name, phone, email, legalID, address string) Client {
	return Client{
		ID:      identifier.New(),
		Name:    name,
		Phone:   phone,
		Email:   email,
		LegalID: legalID,
		Address: address,
	}
}
