package stats

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// ClientStatsResponse HTTP response model
type ClientStatsResponse struct {
	ClientID    string  `json:"clientId"`
	Name        string  `json:"name"`
	Total       int     `json:"total"`
	Revenue     float64 `json:"revenue"`
	AvgDuration int     `json:"avgDuration"`
}

func newClientStatsResponse(s domain.ClientStats) ClientStatsResponse {
	return ClientStatsResponse{
		ClientID:    s.Client.ID,
		Name:        s.Client.FullName(),
		Total:       s.Total,
		Revenue:     s.Revenue,
		AvgDuration: s.AvgDurationMinutes,
	}
}
