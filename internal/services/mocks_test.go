package services_test

import (
	"time"

	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/repositories"
)

// In-memory repository fakes. The db argument is ignored; tests pass nil.

type fakeUserRepo struct {
	users     map[uint]*models.User
	nextID    uint
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) add(username, email, passwordHash string) *models.User {
	user := &models.User{
		BaseModel:    models.BaseModel{ID: r.nextID, CreatedAt: time.Now()},
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	r.users[r.nextID] = user
	r.nextID++
	return user
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return repositories.ErrUserDuplicate
		}
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[r.nextID] = user
	r.nextID++
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(_ *gorm.DB, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ *gorm.DB) ([]models.User, error) {
	users := make([]models.User, 0, len(r.users))
	for id := uint(1); id < r.nextID; id++ {
		if user, ok := r.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

type fakeJobRepo struct {
	jobs   map[uint]*models.Job
	nextID uint
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uint]*models.Job), nextID: 1}
}

func (r *fakeJobRepo) add(title, company string, postedBy uint) *models.Job {
	job := &models.Job{
		BaseModel: models.BaseModel{ID: r.nextID, CreatedAt: time.Now()},
		Title:     title,
		Company:   company,
		PostedBy:  postedBy,
	}
	r.jobs[r.nextID] = job
	r.nextID++
	return job
}

func (r *fakeJobRepo) Create(_ *gorm.DB, job *models.Job) error {
	job.ID = r.nextID
	job.CreatedAt = time.Now()
	r.jobs[r.nextID] = job
	r.nextID++
	return nil
}

func (r *fakeJobRepo) FindByID(_ *gorm.DB, id uint) (*models.Job, error) {
	if job, ok := r.jobs[id]; ok {
		return job, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindAll(_ *gorm.DB) ([]models.Job, error) {
	jobs := make([]models.Job, 0, len(r.jobs))
	// newest first: ids are assigned in insertion order
	for id := r.nextID; id >= 1; id-- {
		if job, ok := r.jobs[id]; ok {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

func (r *fakeJobRepo) FindByPoster(_ *gorm.DB, userID uint) ([]models.Job, error) {
	var jobs []models.Job
	for id := r.nextID; id >= 1; id-- {
		if job, ok := r.jobs[id]; ok && job.PostedBy == userID {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

func (r *fakeJobRepo) Update(_ *gorm.DB, id uint, fields map[string]interface{}) error {
	job, ok := r.jobs[id]
	if !ok {
		return repositories.ErrJobNotFound
	}
	if title, ok := fields["title"].(string); ok {
		job.Title = title
	}
	if company, ok := fields["company"].(string); ok {
		job.Company = company
	}
	return nil
}

func (r *fakeJobRepo) Delete(_ *gorm.DB, id uint) error {
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) Exists(_ *gorm.DB, id uint) (bool, error) {
	_, ok := r.jobs[id]
	return ok, nil
}

type fakeReviewRepo struct {
	reviews map[uint]*models.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uint]*models.Review), nextID: 1}
}

func (r *fakeReviewRepo) Create(_ *gorm.DB, review *models.Review) error {
	review.ID = r.nextID
	review.CreatedAt = time.Now()
	r.reviews[r.nextID] = review
	r.nextID++
	return nil
}

func (r *fakeReviewRepo) FindByID(_ *gorm.DB, id uint) (*models.Review, error) {
	if review, ok := r.reviews[id]; ok {
		return review, nil
	}
	return nil, repositories.ErrReviewNotFound
}

func (r *fakeReviewRepo) FindByJob(_ *gorm.DB, jobID uint) ([]models.Review, error) {
	var reviews []models.Review
	for id := r.nextID; id >= 1; id-- {
		if review, ok := r.reviews[id]; ok && review.JobID == jobID {
			reviews = append(reviews, *review)
		}
	}
	return reviews, nil
}

var (
	_ repositories.UserRepository   = (*fakeUserRepo)(nil)
	_ repositories.JobRepository    = (*fakeJobRepo)(nil)
	_ repositories.ReviewRepository = (*fakeReviewRepo)(nil)
)
