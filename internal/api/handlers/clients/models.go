package clients

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	clientsService "github.com/m04kA/SMC-AgendaService/internal/service/clients"
)

// ClientRequest HTTP request model
type ClientRequest struct {
	Name             string  `json:"name"`
	Surname          *string `json:"surname,omitempty"`
	Phone            string  `json:"phone"`
	WhatsappReminder string  `json:"whatsappReminder"` // "24h" | "48h" | "1week" | ""
	Notes            *string `json:"notes,omitempty"`
}

// ClientResponse HTTP response model
type ClientResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Surname          *string `json:"surname,omitempty"`
	Phone            string  `json:"phone"`
	WhatsappReminder string  `json:"whatsappReminder"`
	WhatsappEnabled  bool    `json:"whatsappEnabled"`
	Notes            *string `json:"notes,omitempty"`
	Visits           int     `json:"visits"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *ClientRequest) ToServiceInput() clientsService.ClientInput {
	return clientsService.ClientInput{
		Name:             r.Name,
		Surname:          r.Surname,
		Phone:            r.Phone,
		WhatsappReminder: r.WhatsappReminder,
		Notes:            r.Notes,
	}
}

// NewClientResponse конвертирует доменного клиента в HTTP модель
func NewClientResponse(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:               c.ID,
		Name:             c.Name,
		Surname:          c.Surname,
		Phone:            c.Phone,
		WhatsappReminder: string(c.WhatsappReminder),
		WhatsappEnabled:  c.WhatsappEnabled(),
		Notes:            c.Notes,
		Visits:           c.Visits,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.Format(time.RFC3339),
	}
}
