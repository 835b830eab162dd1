package entities

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool   `json:"is_admin"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsVerified   bool   `json:"is_verified"`

	FirstName     string  `gorm:"size:50" json:"first_name,omitempty"`
	LastName      string  `gorm:"size:50" json:"last_name,omitempty"`
	Age           int     `json:"age,omitempty"`
	Gender        string  `gorm:"size:10" json:"gender,omitempty"`
	HeightCm      float64 `json:"height_cm,omitempty"`
	WeightKg      float64 `json:"weight_kg,omitempty"`
	ActivityLevel string  `gorm:"size:20" json:"activity_level,omitempty"` // sedentary, light, moderate, active, very_active

	LastLogin *time.Time `json:"last_login,omitempty"`

	MealLogs       []*MealLog       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	NutritionGoals []*NutritionGoal `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

// CalculateBMR uses the Mifflin-St Jeor equation. Returns 0 when the
// profile is incomplete.
func (u *User) CalculateBMR() float64 {
	if u.Age <= 0 || u.HeightCm <= 0 || u.WeightKg <= 0 || u.Gender == "" {
		return 0
	}

	bmr := 10*u.WeightKg + 6.25*u.HeightCm - 5*float64(u.Age)
	if u.Gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}

func (u *User) CalculateTDEE() float64 {
	bmr := u.CalculateBMR()
	if bmr == 0 || u.ActivityLevel == "" {
		return 0
	}

	multipliers := map[string]float64{
		"sedentary":   1.2,
		"light":       1.375,
		"moderate":    1.55,
		"active":      1.725,
		"very_active": 1.9,
	}

	m, ok := multipliers[u.ActivityLevel]
	if !ok {
		m = 1.2
	}
	return bmr * m
}
