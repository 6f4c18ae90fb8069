package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/middleware"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services/dto"
	"github.com/Jagadeeshroc/backend-of-Achyuta/pkg/apperrors"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes mounts the job CRUD. Reads are public; writes require a
// bearer token but carry no ownership check beyond it.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)

		jobs.POST("", authMW, h.CreateJob)
		jobs.PUT("/:id", authMW, h.UpdateJob)
		jobs.DELETE("/:id", authMW, h.DeleteJob)
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.jobService.CreateJob(db, user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	db := h.GetDB(c)

	jobs, err := h.jobService.ListJobs(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.GetJob(db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.UpdateJob(db, id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job updated successfully"})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.DeleteJob(db, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job deleted"})
}
