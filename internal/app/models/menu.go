package models

import "time"

// MealType is the meal slot of a menu entry
type MealType string

const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
	MealSnacks    MealType = "SNACKS"
	MealDinner    MealType = "DINNER"
)

// Valid reports whether m is a known meal slot
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealSnacks, MealDinner:
		return true
	}
	return false
}

// MenuEntry is one meal on one weekday of the mess menu
type MenuEntry struct {
	ID        int64     `db:"id"`
	DayOfWeek int       `db:"day_of_week"` // 0=Sunday .. 6=Saturday
	Meal      MealType  `db:"meal"`
	Items     string    `db:"items"`
	UpdatedAt time.Time `db:"updated_at"`
}
