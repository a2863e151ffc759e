package tags

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// TagRequest HTTP request model
type TagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagResponse HTTP response model
type TagResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func newTagResponse(t *domain.Tag) *TagResponse {
	return &TagResponse{ID: t.ID, Name: t.Name, Color: t.Color}
}
