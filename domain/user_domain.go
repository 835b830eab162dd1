package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "profile retrieved successfully"
	MessageSuccessUpdateUser     = "profile updated successfully"
	MessageSuccessVerifyEmail    = "email verified successfully"
	MessageSuccessSendVerifyMail = "verification email sent"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve profile"
	MessageFailedUpdateUser     = "failed to update profile"
	MessageFailedVerifyEmail    = "failed to verify email"
	MessageFailedSendVerifyMail = "failed to send verification email"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=80"`
		Email    string `json:"email" validate:"required,email,max=120"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateUserRequest struct {
		FirstName     string   `json:"first_name" validate:"omitempty,max=50"`
		LastName      string   `json:"last_name" validate:"omitempty,max=50"`
		Age           *int     `json:"age" validate:"omitempty,gt=0"`
		Gender        string   `json:"gender" validate:"omitempty,oneof=male female other"`
		HeightCm      *float64 `json:"height_cm" validate:"omitempty,gt=0"`
		WeightKg      *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
		ActivityLevel string   `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	}

	UserResponse struct {
		ID            uint       `json:"id"`
		Username      string     `json:"username"`
		Email         string     `json:"email"`
		IsAdmin       bool       `json:"is_admin"`
		IsVerified    bool       `json:"is_verified"`
		FirstName     string     `json:"first_name,omitempty"`
		LastName      string     `json:"last_name,omitempty"`
		Age           int        `json:"age,omitempty"`
		Gender        string     `json:"gender,omitempty"`
		HeightCm      float64    `json:"height_cm,omitempty"`
		WeightKg      float64    `json:"weight_kg,omitempty"`
		ActivityLevel string     `json:"activity_level,omitempty"`
		BMR           float64    `json:"bmr,omitempty"`
		TDEE          float64    `json:"tdee,omitempty"`
		LastLogin     *time.Time `json:"last_login,omitempty"`
	}
)
