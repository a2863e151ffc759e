package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/planning"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// generateTimeSlots генерирует сетку слотов рабочего дня с шагом step
// Слот попадает в сетку, только если целиком помещается до конца рабочего окна
// Для сегодняшнего дня слоты, начинающиеся раньше текущего времени, отбрасываются
func generateTimeSlots(
	hours domain.WorkingHours,
	duration int,
	step int,
	day time.Time,
	now time.Time,
) ([]time.Time, error) {
	openMin, err := hours.Start.Minutes()
	if err != nil {
		return nil, err
	}
	closeMin, err := hours.End.Minutes()
	if err != nil {
		return nil, err
	}

	y, m, d := day.Date()
	slots := make([]time.Time, 0)

	for start := openMin; start+duration <= closeMin; start += step {
		slotStart := time.Date(y, m, d, start/60, start%60, 0, 0, day.Location())
		if slotStart.Before(now) {
			continue
		}
		slots = append(slots, slotStart)
	}

	return slots, nil
}

// freeSlots оставляет слоты без пересечений с существующими записями
// Граничащие интервалы (конец одной записи = начало слота) пересечением не считаются
func freeSlots(snapshot *planning.Snapshot, starts []time.Time, duration int) []Slot {
	result := make([]Slot, 0, len(starts))

	for _, start := range starts {
		findings := snapshot.Detect(planning.Candidate{StartAt: start, DurationMinutes: duration})
		if hasOverlap(findings) {
			continue
		}
		result = append(result, Slot{
			StartAt:         start,
			StartTime:       types.NewTimeString(start),
			DurationMinutes: duration,
		})
	}

	return result
}

func hasOverlap(findings []planning.Finding) bool {
	for _, f := range findings {
		if f.Kind == planning.FindingOverlap {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}
