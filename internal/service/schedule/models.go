package schedule

// HolidayInput данные нового праздника
type HolidayInput struct {
	Date string // YYYY-MM-DD
	Name string
}
