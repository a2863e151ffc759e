package domain

import (
	"math"
	"time"
)

// ClientStats aggregated history of one client
type ClientStats struct {
	Client             *Client
	Total              int     // past appointments
	Revenue            float64 // sum of cost, missing cost counts as 0
	AvgDurationMinutes int     // rounded mean, 0 when no appointments
}

// ComputeClientStats aggregates appointments that started before now.
// Every client gets an entry, in the order given.
func ComputeClientStats(clients []*Client, appointments []*Appointment, now time.Time) []ClientStats {
	type acc struct {
		total    int
		revenue  float64
		duration int
	}
	byClient := make(map[string]*acc, len(clients))
	for _, a := range appointments {
		if !a.StartAt.Before(now) {
			continue
		}
		s, ok := byClient[a.ClientID]
		if !ok {
			s = &acc{}
			byClient[a.ClientID] = s
		}
		s.total++
		s.duration += a.DurationMinutes
		if a.Cost != nil {
			s.revenue += *a.Cost
		}
	}

	result := make([]ClientStats, 0, len(clients))
	for _, c := range clients {
		st := ClientStats{Client: c}
		if s, ok := byClient[c.ID]; ok {
			st.Total = s.total
			st.Revenue = s.revenue
			st.AvgDurationMinutes = int(math.Round(float64(s.duration) / float64(s.total)))
		}
		result = append(result, st)
	}
	return result
}
