package delete_appointment

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// Request модель запроса на удаление
type Request struct {
	ID    string
	Scope domain.Scope // пусто - single
}

// Response модель ответа
type Response struct {
	Deleted []string // ID удаленных записей
}
