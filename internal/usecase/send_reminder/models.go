package send_reminder

// Response результат ручной отправки.
// Ошибка транспорта не считается ошибкой usecase: Success = false.
type Response struct {
	Success bool
	Phone   string // номер с кодом страны
	Message string
}
