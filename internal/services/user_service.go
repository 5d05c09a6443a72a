package services

import (
	"errors"

	"github.com/semihsari152/CoreGameApp-sub006/internal/auth"
	"github.com/semihsari152/CoreGameApp-sub006/internal/models"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
)

var ErrWrongPassword = errors.New("current password is incorrect")

type UserService interface {
	GetByID(id string, includeEmail bool) (*dto.UserDTO, error)
	GetByUsername(username string) (*dto.UserDTO, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserDTO, error)
	ChangePassword(userID string, req dto.ChangePasswordRequest) error
	Search(req dto.UserSearchRequest) (*dto.UserListResponse, error)
	AdminUpdate(userID string, req dto.AdminUpdateUserRequest) (*dto.UserDTO, error)
	Delete(userID string) error
}

type userService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
}

func NewUserService(userRepo repositories.UserRepository, tokenRepo repositories.RefreshTokenRepository) UserService {
	return &userService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func (s *userService) GetByID(id string, includeEmail bool) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserDTO(user, includeEmail)
	return &out, nil
}

func (s *userService) GetByUsername(username string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserDTO(user, false)
	return &out, nil
}

func (s *userService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Country != nil {
		user.Country = *req.Country
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	out := dto.ToUserDTO(user, true)
	return &out, nil
}

func (s *userService) ChangePassword(userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	return s.tokenRepo.DeleteByUserID(userID)
}

func (s *userService) Search(req dto.UserSearchRequest) (*dto.UserListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.userRepo.Search(req.Query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.ToUserDTO(&users[i], false))
	}
	return &dto.UserListResponse{
		Users:    out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// AdminUpdate changes role or status; banning also revokes sessions.
func (s *userService) AdminUpdate(userID string, req dto.AdminUpdateUserRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		if err := auth.ValidateRole(*req.Role); err != nil {
			return nil, err
		}
		user.Role = models.UserRole(*req.Role)
	}
	if req.Status != nil {
		user.Status = models.UserStatus(*req.Status)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	if user.Status == models.UserStatusBanned {
		_ = s.tokenRepo.DeleteByUserID(userID)
	}

	out := dto.ToUserDTO(user, true)
	return &out, nil
}

func (s *userService) Delete(userID string) error {
	if err := s.tokenRepo.DeleteByUserID(userID); err != nil {
		return err
	}
	return s.userRepo.Delete(userID)
}
