package entities

import (
	"time"
)

// MealLog records one consumed quantity of a food. OriginalQuantity keeps
// the number the user actually entered (grams or serving multiple, per
// UnitType); LoggedGrams is the authoritative gram equivalent. The nutrition
// columns are a denormalized snapshot computed at write time and recomputed
// on every edit, never patched field by field.
type MealLog struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	UserID    uint  `gorm:"not null;index" json:"user_id"`
	FoodID    uint  `gorm:"not null;index" json:"food_id"`
	ServingID *uint `json:"serving_id,omitempty"`

	UnitType         string  `gorm:"size:10;not null" json:"unit_type"` // grams | serving
	OriginalQuantity float64 `gorm:"not null" json:"original_quantity"`
	LoggedGrams      float64 `gorm:"not null" json:"logged_grams"`

	// Nutrition snapshot
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Fiber    *float64 `json:"fiber,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
	Sodium   *float64 `json:"sodium,omitempty"`

	MealType  string    `gorm:"size:20;not null;index" json:"meal_type"` // breakfast, lunch, dinner, snack
	Date      time.Time `gorm:"type:date;index" json:"date"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User    *User        `gorm:"foreignKey:UserID" json:"-"`
	Food    *Food        `gorm:"foreignKey:FoodID" json:"-"`
	Serving *FoodServing `gorm:"foreignKey:ServingID" json:"-"`
}
