package services

import (
	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/repositories"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services/dto"
	"github.com/Jagadeeshroc/backend-of-Achyuta/pkg/apperrors"
)

type ReviewService interface {
	CreateReview(db *gorm.DB, jobID uint, author *models.User, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListReviews(db *gorm.DB, jobID uint) (*dto.ReviewListResponse, error)
}

type ReviewServiceImpl struct {
	reviewRepo repositories.ReviewRepository
	jobRepo    repositories.JobRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, jobRepo repositories.JobRepository) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		jobRepo:    jobRepo,
	}
}

// CreateReview attaches a review to an existing job. The author is always the
// authenticated caller; a client-supplied user id is never trusted.
func (s *ReviewServiceImpl) CreateReview(db *gorm.DB, jobID uint, author *models.User, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	exists, err := s.jobRepo.Exists(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound, "job", "Job not found")
	}

	review := &models.Review{
		Content: req.Content,
		Rating:  req.Rating,
		JobID:   jobID,
		UserID:  author.ID,
	}

	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	review.Author = author
	return dto.NewReviewResponse(review), nil
}

// ListReviews returns a job's reviews, newest first, joined with author
// usernames. 404 when the job itself is missing.
func (s *ReviewServiceImpl) ListReviews(db *gorm.DB, jobID uint) (*dto.ReviewListResponse, error) {
	exists, err := s.jobRepo.Exists(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound, "job", "Job not found")
	}

	reviews, err := s.reviewRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, dto.NewReviewResponse(&reviews[i]))
	}

	return &dto.ReviewListResponse{Success: true, Reviews: responses}, nil
}
