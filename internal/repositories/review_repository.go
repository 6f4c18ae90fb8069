package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id uint) (*models.Review, error)
	FindByJob(db *gorm.DB, jobID uint) ([]models.Review, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Review, error) {
	var review models.Review
	err := db.Preload("Author").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindByJob returns a job's reviews, newest first, with authors loaded.
func (r *ReviewRepositoryImpl) FindByJob(db *gorm.DB, jobID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Author").
		Where("job_id = ?", jobID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
