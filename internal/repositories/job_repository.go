package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id uint) (*models.Job, error)
	FindAll(db *gorm.DB) ([]models.Job, error)
	FindByPoster(db *gorm.DB, userID uint) ([]models.Job, error)
	Update(db *gorm.DB, id uint, fields map[string]interface{}) error
	Delete(db *gorm.DB, id uint) error
	Exists(db *gorm.DB, id uint) (bool, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Poster").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindAll returns every job, newest first, with the poster loaded.
func (r *JobRepositoryImpl) FindAll(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Poster").
		Order("created_at DESC, id DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepositoryImpl) FindByPoster(db *gorm.DB, userID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("posted_by = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update overwrites the given columns. ErrJobNotFound when no row matched.
func (r *JobRepositoryImpl) Update(db *gorm.DB, id uint, fields map[string]interface{}) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Exists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&models.Job{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
