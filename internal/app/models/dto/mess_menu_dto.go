package dto

import "github.com/okan/hostelhub/internal/app/models"

// CreateMessMenuRequest creates the menu for a date
type CreateMessMenuRequest struct {
	Date      string  `json:"date" binding:"required" example:"2024-03-01"` // YYYY-MM-DD, unique
	Breakfast string  `json:"breakfast" binding:"required"`
	Lunch     string  `json:"lunch" binding:"required"`
	Snacks    *string `json:"snacks,omitempty"`
	Dinner    string  `json:"dinner" binding:"required"`
}

// UpdateMessMenuRequest updates meal slots for an existing menu
type UpdateMessMenuRequest struct {
	Breakfast *string `json:"breakfast,omitempty"`
	Lunch     *string `json:"lunch,omitempty"`
	Snacks    *string `json:"snacks,omitempty"`
	Dinner    *string `json:"dinner,omitempty"`
}

// MessMenuResponse is the API representation of a daily menu
type MessMenuResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date" example:"2024-03-01"`
	Breakfast string  `json:"breakfast"`
	Lunch     string  `json:"lunch"`
	Snacks    *string `json:"snacks,omitempty"`
	Dinner    string  `json:"dinner"`
}

// FromMessMenu converts a models.MessMenu to its response form
func FromMessMenu(menu *models.MessMenu) MessMenuResponse {
	return MessMenuResponse{
		ID:        menu.ID,
		Date:      menu.Date.Format("2006-01-02"),
		Breakfast: menu.Breakfast,
		Lunch:     menu.Lunch,
		Snacks:    menu.Snacks,
		Dinner:    menu.Dinner,
	}
}

// FromMessMenus converts a slice of menus
func FromMessMenus(menus []*models.MessMenu) []MessMenuResponse {
	responses := make([]MessMenuResponse, 0, len(menus))
	for _, menu := range menus {
		responses = append(responses, FromMessMenu(menu))
	}
	return responses
}
