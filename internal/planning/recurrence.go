package planning

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

var (
	// ErrUnknownRecurrence возвращается для неизвестной частоты повторения
	ErrUnknownRecurrence = errors.New("planning: unknown recurrence")

	// ErrInvalidSpan возвращается, когда период серии не положительный
	ErrInvalidSpan = errors.New("planning: recurrence span must be positive")
)

// Iterations число вхождений серии для периода в месяцах (минимум 1)
func Iterations(freq domain.Recurrence, months int) (int, error) {
	if months < 1 {
		return 0, ErrInvalidSpan
	}

	var n int
	switch freq {
	case domain.RecurrenceWeekly:
		n = int(math.Round(float64(months) * 4.33))
	case domain.RecurrenceBiweekly:
		n = int(math.Round(float64(months) * 2.17))
	case domain.RecurrenceMonthly:
		n = months
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRecurrence, freq)
	}

	if n < 1 {
		n = 1
	}
	return n, nil
}

// Expand возвращает упорядоченные начала вхождений серии, первым идет anchor.
// Недельные шаги считаются по календарю таймзоны anchor, поэтому переход
// на летнее время не сдвигает время приема.
func Expand(anchor time.Time, freq domain.Recurrence, months int) ([]time.Time, error) {
	n, err := Iterations(freq, months)
	if err != nil {
		return nil, err
	}

	switch freq {
	case domain.RecurrenceWeekly, domain.RecurrenceBiweekly:
		interval := 1
		if freq == domain.RecurrenceBiweekly {
			interval = 2
		}
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:     rrule.WEEKLY,
			Interval: interval,
			Count:    n,
			Dtstart:  anchor,
		})
		if err != nil {
			return nil, fmt.Errorf("planning: build rule: %w", err)
		}
		return rule.All(), nil

	default:
		// месяц прибавляется к anchor, а не к предыдущему вхождению:
		// 31 января + 1 месяц переполняется в март, как у time.AddDate
		occurrences := make([]time.Time, 0, n)
		for i := 0; i < n; i++ {
			occurrences = append(occurrences, anchor.AddDate(0, i, 0))
		}
		return occurrences, nil
	}
}

// Shift новое время одного вхождения серии
type Shift struct {
	Appointment *domain.Appointment
	NewStartAt  time.Time
}

// ShiftSeries сдвигает на одну дельту все вхождения серии, начинающиеся не раньше
// исходного времени редактируемого вхождения. Более ранние не затрагиваются.
// Результат упорядочен по исходному времени.
func ShiftSeries(series []*domain.Appointment, editedOriginal, editedNew time.Time) []Shift {
	delta := editedNew.Sub(editedOriginal)

	shifts := make([]Shift, 0, len(series))
	for _, a := range series {
		if a.StartAt.Before(editedOriginal) {
			continue
		}
		shifts = append(shifts, Shift{
			Appointment: a,
			NewStartAt:  a.StartAt.Add(delta),
		})
	}

	sort.SliceStable(shifts, func(i, j int) bool {
		return shifts[i].Appointment.StartAt.Before(shifts[j].Appointment.StartAt)
	})
	return shifts
}

// OccurrenceConflict конфликты одного будущего вхождения серии
type OccurrenceConflict struct {
	Index    int
	Date     string // YYYY-MM-DD, значение для списка пропусков
	StartAt  time.Time
	Findings []Finding
}

// PreviewSeries проверяет вхождения с индексом >= 1 и возвращает только конфликтные.
// Вхождение 0 проверяется отдельно как сам кандидат.
func (s *Snapshot) PreviewSeries(occurrences []time.Time, durationMinutes int, excludeID string) []OccurrenceConflict {
	result := make([]OccurrenceConflict, 0)
	for i := 1; i < len(occurrences); i++ {
		findings := s.Detect(Candidate{
			StartAt:         occurrences[i],
			DurationMinutes: durationMinutes,
			ExcludeID:       excludeID,
		})
		if len(findings) == 0 {
			continue
		}
		result = append(result, OccurrenceConflict{
			Index:    i,
			Date:     occurrences[i].Format(domain.DateFormat),
			StartAt:  occurrences[i],
			Findings: findings,
		})
	}
	return result
}
