package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login success"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessUploadAvatar   = "avatar uploaded successfully"
	MessageSuccessVerifyEmail    = "email verified successfully"
	MessageSuccessSendVerify     = "verification email sent"
	MessageSuccessDeleteAccount  = "account deleted successfully"
	MessageSuccessSubscribeNews  = "subscribed to newsletter"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedUploadAvatar  = "failed to upload avatar"
	MessageFailedVerifyEmail   = "failed to verify email"
	MessageFailedSendVerify    = "failed to send verification email"
	MessageFailedDeleteAccount = "failed to delete account"
	MessageFailedSubscribeNews = "failed to subscribe to newsletter"

	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrWrongCredentials      = errors.New("wrong email or password")
	ErrEmailNotVerified      = errors.New("email not verified")
	ErrInvalidAge            = errors.New("age must be greater than zero")
	ErrInvalidHeight         = errors.New("height must be greater than zero")
	ErrInvalidWeight         = errors.New("weight must be greater than zero")
	ErrAlreadySubscribed     = errors.New("email already subscribed")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		Age           int     `json:"age" validate:"omitempty,gt=0"`
		Gender        string  `json:"gender" validate:"omitempty,oneof=Female Male"`
		HeightCM      float64 `json:"height_cm" validate:"omitempty,gt=0"`
		WeightKG      float64 `json:"weight_kg" validate:"omitempty,gt=0"`
		ActivityLevel string  `json:"activity_level" validate:"omitempty"`
		Goal          string  `json:"goal" validate:"omitempty,oneof='Weight Loss' Maintain 'Weight Gain'"`
		Diabetes      *bool   `json:"diabetes,omitempty"`
		Acidity       *bool   `json:"acidity,omitempty"`
		Constipation  *bool   `json:"constipation,omitempty"`
		Obesity       *bool   `json:"obesity,omitempty"`
	}

	ProfileResponse struct {
		ID            string  `json:"id"`
		Username      string  `json:"username"`
		Email         string  `json:"email"`
		Age           int     `json:"age"`
		Gender        string  `json:"gender"`
		HeightCM      float64 `json:"height_cm"`
		WeightKG      float64 `json:"weight_kg"`
		ActivityLevel string  `json:"activity_level"`
		Goal          string  `json:"goal"`
		Diabetes      bool    `json:"diabetes"`
		Acidity       bool    `json:"acidity"`
		Constipation  bool    `json:"constipation"`
		Obesity       bool    `json:"obesity"`
		AvatarURL     string  `json:"avatar_url,omitempty"`
		Verified      bool    `json:"verified"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}

	SendVerifyRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	SubscribeNewsletterRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
