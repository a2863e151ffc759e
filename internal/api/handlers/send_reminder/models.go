package send_reminder

import sendReminder "github.com/m04kA/SMC-AgendaService/internal/usecase/send_reminder"

// SendResponse HTTP response model
type SendResponse struct {
	Success bool   `json:"success"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(r *sendReminder.Response) *SendResponse {
	return &SendResponse{Success: r.Success, Phone: r.Phone, Message: r.Message}
}
