package services

import (
	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/repositories"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services/dto"
	"github.com/Jagadeeshroc/backend-of-Achyuta/pkg/apperrors"
)

type JobService interface {
	CreateJob(db *gorm.DB, posterID uint, req *dto.CreateJobRequest) (*dto.CreateJobResponse, error)
	ListJobs(db *gorm.DB) ([]*dto.JobResponse, error)
	GetJob(db *gorm.DB, id uint) (*dto.JobResponse, error)
	UpdateJob(db *gorm.DB, id uint, req *dto.UpdateJobRequest) error
	DeleteJob(db *gorm.DB, id uint) error
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// CreateJob stores a posting attributed to posterID. The poster id comes from
// the authenticated principal, never from the request body.
func (s *JobServiceImpl) CreateJob(db *gorm.DB, posterID uint, req *dto.CreateJobRequest) (*dto.CreateJobResponse, error) {
	if _, err := s.userRepo.FindByID(db, posterID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		PostedBy:     posterID,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateJobResponse{Success: true, JobID: job.ID}, nil
}

// ListJobs returns every posting, newest first, with poster usernames.
func (s *JobServiceImpl) ListJobs(db *gorm.DB) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, dto.NewJobResponse(&jobs[i]))
	}
	return responses, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, id uint) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

// UpdateJob overwrites all editable columns. No ownership check: any
// authenticated caller may edit any job.
func (s *JobServiceImpl) UpdateJob(db *gorm.DB, id uint, req *dto.UpdateJobRequest) error {
	fields := map[string]interface{}{
		"title":        req.Title,
		"company":      req.Company,
		"location":     req.Location,
		"description":  req.Description,
		"requirements": req.Requirements,
		"salary":       req.Salary,
	}

	if err := s.jobRepo.Update(db, id, fields); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteJob removes a posting. Same missing ownership check as UpdateJob.
func (s *JobServiceImpl) DeleteJob(db *gorm.DB, id uint) error {
	if err := s.jobRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
