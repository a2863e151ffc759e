package send_reminders

// Result итог одного прогона
type Result struct {
	Checked  int // будущих записей просмотрено
	Eligible int // попали в окно напоминания
	Sent     int
	Failed   int
	Skipped  int // маркер уже существует
}
