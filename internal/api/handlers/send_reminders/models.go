package send_reminders

import sendReminders "github.com/m04kA/SMC-AgendaService/internal/usecase/send_reminders"

// RunResponse HTTP response model
type RunResponse struct {
	Checked  int `json:"checked"`
	Eligible int `json:"eligible"`
	Sent     int `json:"sent"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
}

// FromUseCaseResult конвертирует итог прогона в HTTP response
func FromUseCaseResult(r *sendReminders.Result) *RunResponse {
	return &RunResponse{
		Checked:  r.Checked,
		Eligible: r.Eligible,
		Sent:     r.Sent,
		Failed:   r.Failed,
		Skipped:  r.Skipped,
	}
}
