package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/semihsari152/CoreGameApp-sub006/internal/auth"
	"github.com/semihsari152/CoreGameApp-sub006/internal/email"
	"github.com/semihsari152/CoreGameApp-sub006/internal/logger"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountBanned      = errors.New("account is banned")
	ErrInvalidResetToken  = errors.New("reset token is invalid or expired")
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
	VerifyEmail(token string) error
	RequestPasswordReset(emailAddr string) error
	ConfirmPasswordReset(token, newPassword string) error
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
	mailer    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
	mailer email.Provider,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
	}
}

// Register creates a pending account and sends the verification mail.
// Mail failure does not fail registration.
func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:             req.Email,
		Username:          req.Username,
		PasswordHash:      hash,
		Role:              models.UserRoleUser,
		Status:            models.UserStatusPending,
		DisplayName:       req.DisplayName,
		Country:           req.Country,
		VerificationToken: uuid.NewString(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerification(user.Email, user.VerificationToken); err != nil {
		logger.WithError(err).Warn("verification mail failed", "user_id", user.ID)
	}

	return s.issueTokens(user)
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if user.Status == models.UserStatusBanned {
		return nil, ErrAccountBanned
	}

	_ = s.userRepo.UpdateLastSeen(user.ID)
	return s.issueTokens(user)
}

// Refresh rotates the refresh token: the presented token is burned and
// a new pair is issued.
func (s *authService) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.tokenRepo.FindByToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokenRepo.DeleteByToken(refreshToken)
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status == models.UserStatusBanned {
		return nil, ErrAccountBanned
	}

	if err := s.tokenRepo.DeleteByToken(refreshToken); err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) Logout(refreshToken string) error {
	return s.tokenRepo.DeleteByToken(refreshToken)
}

func (s *authService) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		return err
	}
	return s.userRepo.VerifyUser(user.ID)
}

// RequestPasswordReset always reports success to the caller so account
// existence is not leaked; the mail only goes out for known addresses.
func (s *authService) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return err
	}

	exp := time.Now().Add(time.Hour)
	user.ResetToken = uuid.NewString()
	user.ResetTokenExp = &exp
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(user.Email, user.ResetToken); err != nil {
		logger.WithError(err).Warn("password reset mail failed", "user_id", user.ID)
	}
	return nil
}

func (s *authService) ConfirmPasswordReset(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return ErrInvalidResetToken
	}
	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return ErrInvalidResetToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	// Every active session is revoked on password change.
	return s.tokenRepo.DeleteByUserID(user.ID)
}

func (s *authService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokenRepo.Create(refresh); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         dto.ToUserDTO(user, true),
	}, nil
}
