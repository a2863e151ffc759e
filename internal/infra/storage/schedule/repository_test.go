package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

func TestSaveQuery(t *testing.T) {
	query, args, err := saveQuery([]byte(`{}`)).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO settings (key,value) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()",
		query)
	assert.Equal(t, []any{"schedule", "{}"}, args)
}

func TestScheduleDocument_WeekdayKeys(t *testing.T) {
	raw, err := json.Marshal(domain.DefaultWeeklySchedule())
	require.NoError(t, err)

	var doc map[string]*domain.WorkingHours
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Nil(t, doc["1"])
	require.NotNil(t, doc["2"])
	assert.Equal(t, "08:00", doc["2"].Start.String())

	var decoded domain.WeeklySchedule
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, domain.DefaultWeeklySchedule(), decoded)
	assert.Nil(t, decoded[time.Saturday])
}
