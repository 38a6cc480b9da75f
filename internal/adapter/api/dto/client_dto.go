package dto

import "github.com/panisul/gestao/internal/domain/client"

// ClientRequest representa a requisição de registro de cliente. O ID já
// vem atribuído pelo chamador (a sessão que criou o cliente).
type ClientRequest struct {
	ID      string `json:"id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	LegalID string `json:"legalId"`
	Address string `json:"address"`
}

// ClientResponse representa a resposta de cliente
type ClientResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	LegalID string `json:"legalId,omitempty"`
	Address string `json:"address,omitempty"`
}

// ToDomain converte a requisição para a entidade de domínio
func (r ClientRequest) ToDomain() client.Client {
	return client.Client{
		ID:      r.ID,
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		LegalID: r.LegalID,
		Address: r.Address,
	}
}

// ToClientResponse converte a entidade de domínio para a resposta
func ToClientResponse(c client.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		LegalID: c.LegalID,
		Address: c.Address,
	}
}

// ToClientResponseList converte uma lista de clientes para a resposta
func ToClientResponseList(clients []client.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ToClientResponse(c))
	}
	return out
}
