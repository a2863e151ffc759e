package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

func TestIterations(t *testing.T) {
	tests := []struct {
		freq   domain.Recurrence
		months int
		want   int
	}{
		{domain.RecurrenceWeekly, 2, 9},
		{domain.RecurrenceWeekly, 6, 26},
		{domain.RecurrenceBiweekly, 1, 2},
		{domain.RecurrenceBiweekly, 6, 13},
		{domain.RecurrenceMonthly, 6, 6},
		{domain.RecurrenceMonthly, 1, 1},
	}

	for _, tt := range tests {
		got, err := Iterations(tt.freq, tt.months)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s x %d", tt.freq, tt.months)
	}
}

func TestIterations_Errors(t *testing.T) {
	_, err := Iterations(domain.RecurrenceWeekly, 0)
	assert.ErrorIs(t, err, ErrInvalidSpan)

	_, err = Iterations(domain.Recurrence("daily"), 3)
	assert.ErrorIs(t, err, ErrUnknownRecurrence)
}

func TestExpand_WeeklyTwoMonths(t *testing.T) {
	anchor := at(2025, time.March, 3, 10, 0)

	occurrences, err := Expand(anchor, domain.RecurrenceWeekly, 2)
	require.NoError(t, err)
	require.Len(t, occurrences, 9)

	assert.True(t, occurrences[0].Equal(anchor))
	for i := 1; i < len(occurrences); i++ {
		prev, cur := occurrences[i-1], occurrences[i]
		assert.True(t, prev.AddDate(0, 0, 7).Equal(cur), "occurrence %d", i)
		assert.Equal(t, 10, cur.Hour(), "wall time kept across DST")
	}
}

func TestExpand_Biweekly(t *testing.T) {
	anchor := at(2025, time.January, 7, 9, 30)

	occurrences, err := Expand(anchor, domain.RecurrenceBiweekly, 1)
	require.NoError(t, err)
	require.Len(t, occurrences, 2)
	assert.True(t, at(2025, time.January, 21, 9, 30).Equal(occurrences[1]))
}

func TestExpand_MonthlyOverflow(t *testing.T) {
	anchor := at(2025, time.January, 31, 10, 0)

	occurrences, err := Expand(anchor, domain.RecurrenceMonthly, 3)
	require.NoError(t, err)
	require.Len(t, occurrences, 3)

	assert.Equal(t, anchor, occurrences[0])
	// 31 февраля не существует, переполнение в 3 марта
	assert.Equal(t, at(2025, time.March, 3, 10, 0), occurrences[1])
	assert.Equal(t, at(2025, time.March, 31, 10, 0), occurrences[2])
}

func TestExpand_Deterministic(t *testing.T) {
	anchor := at(2025, time.March, 3, 10, 0)

	first, err := Expand(anchor, domain.RecurrenceBiweekly, 6)
	require.NoError(t, err)
	second, err := Expand(anchor, domain.RecurrenceBiweekly, 6)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestShiftSeries_PreservesRelativeSpacing(t *testing.T) {
	t0 := appointment("a0", "c1", at(2025, time.March, 4, 10, 0), 60)
	t1 := appointment("a1", "c1", at(2025, time.March, 11, 10, 0), 60)
	t2 := appointment("a2", "c1", at(2025, time.March, 18, 10, 0), 60)

	delta := 90 * time.Minute
	shifts := ShiftSeries([]*domain.Appointment{t2, t0, t1}, t1.StartAt, t1.StartAt.Add(delta))

	require.Len(t, shifts, 2)
	assert.Equal(t, "a1", shifts[0].Appointment.ID)
	assert.Equal(t, at(2025, time.March, 11, 11, 30), shifts[0].NewStartAt)
	assert.Equal(t, "a2", shifts[1].Appointment.ID)
	assert.Equal(t, at(2025, time.March, 18, 11, 30), shifts[1].NewStartAt)

	// t0 не тронут
	assert.Equal(t, at(2025, time.March, 4, 10, 0), t0.StartAt)
}

func TestPreviewSeries(t *testing.T) {
	holiday := &domain.Holiday{ID: "h1", Date: time.Date(2025, time.March, 18, 0, 0, 0, 0, madrid), Name: "San José"}
	s := newSnapshot(nil, holiday)

	occurrences, err := Expand(at(2025, time.March, 4, 10, 0), domain.RecurrenceWeekly, 1)
	require.NoError(t, err)

	conflicts := s.PreviewSeries(occurrences, 60, "")
	require.Len(t, conflicts, 1)
	assert.Equal(t, 2, conflicts[0].Index)
	assert.Equal(t, "2025-03-18", conflicts[0].Date)
	assert.Equal(t, FindingHoliday, conflicts[0].Findings[0].Kind)
}
