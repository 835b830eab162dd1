package entities

type NutritionGoal struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	TargetCalories float64  `gorm:"not null" json:"target_calories"`
	TargetProtein  float64  `gorm:"not null" json:"target_protein"`
	TargetCarbs    *float64 `json:"target_carbs,omitempty"`
	TargetFat      *float64 `json:"target_fat,omitempty"`
	TargetFiber    *float64 `json:"target_fiber,omitempty"`

	GoalType string `gorm:"size:20;not null" json:"goal_type"` // lose, maintain, gain
	IsActive bool   `gorm:"default:true" json:"is_active"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
