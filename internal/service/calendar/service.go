// Package calendar экспортирует записи и праздники в формате iCalendar.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

const productID = "-//SMC//AgendaService//ES"

// Service собирает ICS ленту
type Service struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	tagRepo         TagRepository
	holidayRepo     HolidayRepository
	calendarName    string
	loc             *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	tagRepo TagRepository,
	holidayRepo HolidayRepository,
	calendarName string,
	loc *time.Location,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		tagRepo:         tagRepo,
		holidayRepo:     holidayRepo,
		calendarName:    calendarName,
		loc:             loc,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Feed возвращает сериализованный календарь со всеми записями и праздниками
func (s *Service) Feed(ctx context.Context) (string, error) {
	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{})
	if err != nil {
		s.logger.Error("CalendarFeed: failed to list appointments: %v", err)
		return "", fmt.Errorf("%w: Feed - list appointments: %v", ErrInternal, err)
	}

	clients, err := s.clientRepo.List(ctx, "")
	if err != nil {
		s.logger.Error("CalendarFeed: failed to list clients: %v", err)
		return "", fmt.Errorf("%w: Feed - list clients: %v", ErrInternal, err)
	}

	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		s.logger.Error("CalendarFeed: failed to list tags: %v", err)
		return "", fmt.Errorf("%w: Feed - list tags: %v", ErrInternal, err)
	}

	holidays, err := s.holidayRepo.List(ctx, nil)
	if err != nil {
		s.logger.Error("CalendarFeed: failed to list holidays: %v", err)
		return "", fmt.Errorf("%w: Feed - list holidays: %v", ErrInternal, err)
	}

	return s.build(appointments, clients, tags, holidays), nil
}

func (s *Service) build(
	appointments []*domain.Appointment,
	clients []*domain.Client,
	tags []*domain.Tag,
	holidays []*domain.Holiday,
) string {
	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.FullName()
	}
	tagNames := make(map[string]string, len(tags))
	for _, t := range tags {
		tagNames[t.ID] = t.Name
	}

	stamp := s.timeProvider.Now().UTC()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(s.calendarName)
	cal.SetXWRTimezone(s.loc.String())

	for _, a := range appointments {
		event := cal.AddEvent(a.ID)
		event.SetDtStampTime(stamp)
		event.SetStartAt(a.StartAt.UTC())
		event.SetEndAt(a.EndAt().UTC())

		summary, ok := clientNames[a.ClientID]
		if !ok {
			summary = a.ClientID
		}
		event.SetSummary(summary)

		if a.Cost != nil {
			event.SetDescription(fmt.Sprintf("%d min, %.2f €", a.DurationMinutes, *a.Cost))
		} else {
			event.SetDescription(fmt.Sprintf("%d min", a.DurationMinutes))
		}

		categories := make([]string, 0, len(a.TagIDs))
		for _, id := range a.TagIDs {
			if name, ok := tagNames[id]; ok {
				categories = append(categories, name)
			}
		}
		if len(categories) > 0 {
			event.AddProperty(ical.ComponentPropertyCategories, strings.Join(categories, ","))
		}
	}

	for _, h := range holidays {
		event := cal.AddEvent("holiday-" + h.ID)
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(h.Date)
		event.SetAllDayEndAt(h.Date.AddDate(0, 0, 1))
		event.SetSummary(h.Name)
	}

	return cal.Serialize()
}
