package models

import (
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	Pronouns    *string `json:"pronouns,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
}

// ClientResponse клиент салона
type ClientResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Initial     string  `json:"initial"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	Pronouns    *string `json:"pronouns,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ClientListResponse результат поиска клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// FromDomainClient конвертирует клиента в response
func FromDomainClient(c *domain.Client) ClientResponse {
	resp := ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Initial:   c.Initial(),
		Phone:     c.Phone,
		Email:     c.Email,
		Pronouns:  c.Pronouns,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.DateOfBirth != nil {
		dob := c.DateOfBirth.Format(domain.DateFormat)
		resp.DateOfBirth = &dob
	}
	return resp
}

// FromDomainClientList конвертирует список клиентов в response
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{Clients: make([]ClientResponse, 0, len(clients))}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, FromDomainClient(c))
	}
	return resp
}
