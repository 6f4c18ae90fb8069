package dto

import (
	"time"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
)

type CreateReviewRequest struct {
	Content string `json:"content" validate:"required,min=10"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
}

type ReviewResponse struct {
	ID           uint      `json:"id"`
	Content      string    `json:"content"`
	Rating       int       `json:"rating"`
	JobID        uint      `json:"job_id"`
	UserID       uint      `json:"user_id"`
	UserUsername string    `json:"user_username,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Success bool              `json:"success"`
	Reviews []*ReviewResponse `json:"reviews"`
}

func NewReviewResponse(review *models.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:        review.ID,
		Content:   review.Content,
		Rating:    review.Rating,
		JobID:     review.JobID,
		UserID:    review.UserID,
		CreatedAt: review.CreatedAt,
	}
	if review.Author != nil {
		resp.UserUsername = review.Author.Username
	}
	return resp
}
