package dto

import "github.com/hostelmate/hostelmate-backend/internal/app/models"

// UpsertMenuRequest sets the items for one meal slot of one weekday
type UpsertMenuRequest struct {
	DayOfWeek int    `json:"dayOfWeek" binding:"gte=0,lte=6"`
	Meal      string `json:"meal" binding:"required,oneof=BREAKFAST LUNCH SNACKS DINNER"`
	Items     string `json:"items" binding:"required,max=500"`
}

// MenuEntryResponse is the API view of one menu slot
type MenuEntryResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	Meal      string `json:"meal"`
	Items     string `json:"items"`
}

// FromMenuEntry converts a menu entry model into its API view
func FromMenuEntry(m *models.MenuEntry) MenuEntryResponse {
	if m == nil {
		return MenuEntryResponse{}
	}
	return MenuEntryResponse{
		ID:        m.ID,
		DayOfWeek: m.DayOfWeek,
		Meal:      string(m.Meal),
		Items:     m.Items,
	}
}
