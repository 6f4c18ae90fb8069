package dto

import (
	"time"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
)

type CreateJobRequest struct {
	Title        string `json:"title" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Salary       string `json:"salary"`
}

// UpdateJobRequest mirrors create: title and company stay mandatory, the
// optional columns are overwritten with whatever was sent.
type UpdateJobRequest struct {
	Title        string `json:"title" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Salary       string `json:"salary"`
}

type CreateJobResponse struct {
	Success bool `json:"success"`
	JobID   uint `json:"jobId"`
}

type JobResponse struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	Requirements     string    `json:"requirements"`
	Salary           string    `json:"salary"`
	PostedBy         uint      `json:"posted_by"`
	PostedByUsername string    `json:"posted_by_username,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewJobResponse(job *models.Job) *JobResponse {
	resp := &JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Description:  job.Description,
		Requirements: job.Requirements,
		Salary:       job.Salary,
		PostedBy:     job.PostedBy,
		CreatedAt:    job.CreatedAt,
	}
	if job.Poster != nil {
		resp.PostedByUsername = job.Poster.Username
	}
	return resp
}
