package user

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/entities"
	"NutriSense-Backend/internal/utils/mailing"
	"NutriSense-Backend/internal/utils/storage"
	"NutriSense-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) error
		UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, userID string) error
		SendVerificationEmail(ctx context.Context, req domain.SendVerifyRequest) error
		VerifyEmail(ctx context.Context, token string) error
		DeleteAccount(ctx context.Context, userID string) error
		SubscribeNewsletter(ctx context.Context, req domain.SubscribeNewsletterRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.RegisterResponse{}, domain.ErrUsernameAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	if err := s.sendVerification(user.Email); err != nil {
		// Registration stands even when the mail fails; the user can
		// re-request verification later.
		log.Printf("failed to send verification email to %s: %v", user.Email, err)
	}

	return domain.RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrWrongCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrWrongCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	return domain.ProfileResponse{
		ID:            user.ID.String(),
		Username:      user.Username,
		Email:         user.Email,
		Age:           user.Age,
		Gender:        user.Gender,
		HeightCM:      user.HeightCM,
		WeightKG:      user.WeightKG,
		ActivityLevel: user.ActivityLevel,
		Goal:          user.Goal,
		Diabetes:      user.Diabetes,
		Acidity:       user.Acidity,
		Constipation:  user.Constipation,
		Obesity:       user.Obesity,
		AvatarURL:     user.AvatarURL,
		Verified:      user.Verified,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Age < 0 {
		return domain.ErrInvalidAge
	}
	if req.HeightCM < 0 {
		return domain.ErrInvalidHeight
	}
	if req.WeightKG < 0 {
		return domain.ErrInvalidWeight
	}

	if req.Age > 0 {
		user.Age = req.Age
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.HeightCM > 0 {
		user.HeightCM = req.HeightCM
	}
	if req.ActivityLevel != "" {
		user.ActivityLevel = req.ActivityLevel
	}
	if req.Goal != "" {
		user.Goal = req.Goal
	}
	if req.Diabetes != nil {
		user.Diabetes = *req.Diabetes
	}
	if req.Acidity != nil {
		user.Acidity = *req.Acidity
	}
	if req.Constipation != nil {
		user.Constipation = *req.Constipation
	}
	if req.Obesity != nil {
		user.Obesity = *req.Obesity
	}

	// A weight change also appends a weight log entry; profile row and log
	// row go in together or not at all.
	var weightLog *entities.WeightLog
	if req.WeightKG > 0 && req.WeightKG != user.WeightKG {
		user.WeightKG = req.WeightKG
		weightLog = &entities.WeightLog{
			ID:       uuid.New(),
			UserID:   user.ID,
			WeightKG: req.WeightKG,
			Date:     truncateToDay(time.Now()),
		}
	}

	return s.userRepository.UpdateProfileWithWeight(ctx, user, weightLog)
}

func (s *userService) UploadAvatar(ctx context.Context, req domain.UploadAvatarRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	fileName := fmt.Sprintf("avatar-%s", user.ID.String())
	var objectKey string
	var uploadErr error

	if user.AvatarURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(user.AvatarURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Avatar, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
	}
	if uploadErr != nil {
		return uploadErr
	}

	user.AvatarURL = s.s3.GetPublicLinkKey(objectKey)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyRequest) error {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.sendVerification(req.Email)
}

func (s *userService) sendVerification(email string) error {
	token, err := s.jwtService.GenerateTokenEmailVerification(
		map[string]any{"email": email},
		time.Hour*24,
	)
	if err != nil {
		return err
	}
	return mailing.SendVerificationEmail(email, token)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenEmailVerification(token)
	if err != nil {
		return err
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.Verified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.AvatarURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(user.AvatarURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.userRepository.DeleteUserWithLogs(ctx, userID)
}

func (s *userService) SubscribeNewsletter(ctx context.Context, req domain.SubscribeNewsletterRequest) error {
	subscribed, err := s.userRepository.IsNewsletterSubscribed(ctx, req.Email)
	if err != nil {
		return err
	}
	if subscribed {
		return domain.ErrAlreadySubscribed
	}

	sub := &entities.NewsletterSubscriber{
		ID:    uuid.New(),
		Email: req.Email,
	}
	if err := s.userRepository.SubscribeNewsletter(ctx, sub); err != nil {
		return err
	}

	if err := mailing.SendNewsletterWelcome(req.Email); err != nil {
		log.Printf("failed to send newsletter welcome to %s: %v", req.Email, err)
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
