package services

import (
	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/auth"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/repositories"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services/dto"
	"github.com/Jagadeeshroc/backend-of-Achyuta/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Authenticate(db *gorm.DB, token string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
	}
}

// Register creates a user account. Field-level validation (username length,
// email shape, password length) happens at the handler boundary; this layer
// owns the uniqueness contract.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	// Pre-check so the response can name the duplicated field(s). This
	// check-then-insert is racy; the unique indexes settle ties below.
	var taken []string
	if _, err := s.userRepo.FindByUsername(db, req.Username); err == nil {
		taken = append(taken, "username")
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		taken = append(taken, "email")
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if len(taken) > 0 {
		return nil, conflictError(taken)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserDuplicate) {
			// Lost the race to a concurrent registration.
			return nil, apperrors.ErrConflict(err, "user", "Username or Email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.RegisterResponse{Success: true, UserID: user.ID}, nil
}

// Login verifies credentials. Unknown username and wrong password produce the
// identical response so the caller cannot probe which one failed.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &dto.LoginResponse{
		Success:  true,
		UserID:   user.ID,
		Username: user.Username,
		Token:    auth.IssueToken(user.ID),
	}, nil
}

// Authenticate resolves a bearer token to the user it names.
func (s *AuthServiceImpl) Authenticate(db *gorm.DB, token string) (*models.User, error) {
	userID, err := auth.ParseToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func conflictError(fields []string) *apperrors.AppError {
	var label string
	switch {
	case len(fields) == 2:
		label = "Username and Email already exist"
	case fields[0] == "email":
		label = "Email already exists"
	default:
		label = "Username already exists"
	}
	return apperrors.ErrConflict(repositories.ErrUserDuplicate, "user", label).
		WithDetails(map[string][]string{"fields": fields})
}
