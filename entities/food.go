package entities

import (
	"time"
)

// Food is a catalog entry holding a canonical per-100g nutrition profile.
// Fiber, sugar and sodium are pointers: nil means the value is unknown,
// which is distinct from a definitive zero.
type Food struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;index" json:"name"`
	Brand       string `gorm:"size:50" json:"brand,omitempty"`
	Category    string `gorm:"size:50;not null;index" json:"category"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Nutrition per 100g
	Calories float64  `gorm:"not null" json:"calories"`
	Protein  float64  `gorm:"not null" json:"protein"`
	Carbs    float64  `gorm:"not null" json:"carbs"`
	Fat      float64  `gorm:"not null" json:"fat"`
	Fiber    *float64 `json:"fiber,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
	Sodium   *float64 `json:"sodium,omitempty"` // in mg

	// ServingSize is a legacy display field kept for older clients; the
	// serving registry below is the source of truth for unit conversions.
	ServingSize             float64 `gorm:"default:100" json:"serving_size"`
	DefaultServingSizeGrams float64 `gorm:"default:100" json:"default_serving_size_grams"`

	IsVerified bool      `json:"is_verified"`
	CreatedBy  *uint     `json:"created_by,omitempty"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	// DefaultServingID must point at one of this food's own servings, or
	// be null. It is a non-owning pointer; ownership runs through the
	// Servings cascade.
	DefaultServingID *uint `json:"default_serving_id,omitempty"`

	Servings       []*FoodServing `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"servings,omitempty"`
	DefaultServing *FoodServing   `gorm:"foreignKey:DefaultServingID" json:"-"`
	Creator        *User          `gorm:"foreignKey:CreatedBy" json:"-"`
}

// FoodServing is a named, food-scoped unit conversion, e.g. "1 cup" = 195 g.
// The (food_id, serving_name, unit) triple is unique and grams_per_unit is
// strictly positive; both are enforced at the storage layer.
type FoodServing struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FoodID       uint      `gorm:"not null;uniqueIndex:idx_food_serving_natural" json:"food_id"`
	ServingName  string    `gorm:"size:50;not null;uniqueIndex:idx_food_serving_natural" json:"serving_name"`
	Unit         string    `gorm:"size:20;not null;uniqueIndex:idx_food_serving_natural" json:"unit"`
	GramsPerUnit float64   `gorm:"not null;check:grams_per_unit > 0" json:"grams_per_unit"`
	CreatedBy    *uint     `json:"created_by,omitempty"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`

	Food *Food `gorm:"foreignKey:FoodID" json:"-"`
}
