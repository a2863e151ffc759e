// Package planning содержит чистую логику планирования записей:
// поиск конфликтов и развертку повторяющихся серий.
package planning

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// FindingKind тип найденного конфликта
type FindingKind string

const (
	FindingHoliday  FindingKind = "holiday"
	FindingSchedule FindingKind = "schedule"
	FindingOverlap  FindingKind = "overlap"
)

// Finding один конфликт кандидата. Носит рекомендательный характер
type Finding struct {
	Kind    FindingKind
	Message string
}

// Candidate запись, которую проверяем на конфликты
type Candidate struct {
	StartAt         time.Time
	DurationMinutes int
	ExcludeID       string   // при редактировании запись не конфликтует сама с собой
	ExcludeIDs      []string // записи серии, сдвигаемые вместе с кандидатом
}

func (c Candidate) excludes(id string) bool {
	if c.ExcludeID != "" && id == c.ExcludeID {
		return true
	}
	for _, excluded := range c.ExcludeIDs {
		if id == excluded {
			return true
		}
	}
	return false
}

// EndAt конец интервала кандидата
func (c Candidate) EndAt() time.Time {
	return c.StartAt.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

// Snapshot неизменяемый срез данных, по которому ищутся конфликты
type Snapshot struct {
	Schedule     *domain.ScheduleModel
	Appointments []*domain.Appointment
	ClientNames  map[string]string // clientID -> имя для сообщений
	Practitioner string
}

// Detect возвращает конфликты в порядке holiday, schedule, overlap.
// Проверки не прерывают друг друга.
func (s *Snapshot) Detect(c Candidate) []Finding {
	findings := make([]Finding, 0)

	if s.Schedule != nil {
		if holiday := s.Schedule.IsHoliday(c.StartAt); holiday != nil {
			findings = append(findings, Finding{
				Kind:    FindingHoliday,
				Message: fmt.Sprintf("Festivo: %s", holiday.Name),
			})
		}
		if f := s.scheduleFinding(c); f != nil {
			findings = append(findings, *f)
		}
	}

	if f := s.overlapFinding(c); f != nil {
		findings = append(findings, *f)
	}

	return findings
}

func (s *Snapshot) scheduleFinding(c Candidate) *Finding {
	hours := s.Schedule.WorkingHours(c.StartAt.Weekday())
	if hours == nil {
		return &Finding{
			Kind:    FindingSchedule,
			Message: fmt.Sprintf("%s no trabaja este día", s.practitioner()),
		}
	}

	dayStart, err := hours.Start.Minutes()
	if err != nil {
		return nil
	}
	dayEnd, err := hours.End.Minutes()
	if err != nil {
		return nil
	}

	// конец считается от начала без переноса через полночь
	startMin := domain.MinuteOfDay(c.StartAt)
	endMin := startMin + c.DurationMinutes
	if startMin < dayStart || endMin > dayEnd {
		return &Finding{
			Kind:    FindingSchedule,
			Message: fmt.Sprintf("Fuera del horario laboral (%s - %s)", hours.Start, hours.End),
		}
	}
	return nil
}

func (s *Snapshot) overlapFinding(c Candidate) *Finding {
	start, end := c.StartAt, c.EndAt()

	names := make([]string, 0)
	for _, a := range s.Appointments {
		if c.excludes(a.ID) {
			continue
		}
		if a.Overlaps(start, end) {
			names = append(names, s.clientName(a.ClientID))
		}
	}
	if len(names) == 0 {
		return nil
	}

	return &Finding{
		Kind:    FindingOverlap,
		Message: fmt.Sprintf("Solapamiento con: %s", strings.Join(names, ", ")),
	}
}

func (s *Snapshot) clientName(clientID string) string {
	if name, ok := s.ClientNames[clientID]; ok && name != "" {
		return name
	}
	return clientID
}

func (s *Snapshot) practitioner() string {
	if s.Practitioner == "" {
		return "El profesional"
	}
	return s.Practitioner
}
