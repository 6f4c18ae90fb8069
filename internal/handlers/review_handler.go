package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/middleware"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services/dto"
	"github.com/Jagadeeshroc/backend-of-Achyuta/pkg/apperrors"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("/:id/reviews", h.ListReviews)
		jobs.POST("/:id/reviews", authMW, h.CreateReview)
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	jobID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	review, err := h.reviewService.CreateReview(db, jobID, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	jobID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	reviews, err := h.reviewService.ListReviews(db, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
