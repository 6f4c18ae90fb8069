package services

import (
	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/repositories"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services/dto"
	"github.com/Jagadeeshroc/backend-of-Achyuta/pkg/apperrors"
)

type UserService interface {
	ListUsers(db *gorm.DB) ([]*dto.UserResponse, error)
	GetUser(db *gorm.DB, id uint) (*dto.UserResponse, error)
	GetUserJobs(db *gorm.DB, userID uint) ([]*dto.JobResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
}

func NewUserService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		jobRepo:  jobRepo,
	}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// GetUserJobs returns the user's postings, newest first.
func (s *UserServiceImpl) GetUserJobs(db *gorm.DB, userID uint) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByPoster(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, dto.NewJobResponse(&jobs[i]))
	}
	return responses, nil
}
