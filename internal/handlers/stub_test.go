package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/handlers"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services/dto"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/validator"
	"github.com/Jagadeeshroc/backend-of-Achyuta/pkg/apperrors"
	"github.com/Jagadeeshroc/backend-of-Achyuta/pkg/contextkeys"
)

// Stub services record calls and replay canned results so the handler layer
// can be tested without a database.

type stubAuthService struct {
	registerResp *dto.RegisterResponse
	registerErr  error
	loginResp    *dto.LoginResponse
	loginErr     error
	currentUser  *models.User
}

func (s *stubAuthService) Register(_ *gorm.DB, _ *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(_ *gorm.DB, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Authenticate(_ *gorm.DB, token string) (*models.User, error) {
	if s.currentUser != nil && token == strconv.FormatUint(uint64(s.currentUser.ID), 10) {
		return s.currentUser, nil
	}
	return nil, apperrors.ErrInvalidToken
}

type stubJobService struct {
	createResp     *dto.CreateJobResponse
	createErr      error
	createPosterID uint
	updateErr      error
	deleteErr      error
}

func (s *stubJobService) CreateJob(_ *gorm.DB, posterID uint, _ *dto.CreateJobRequest) (*dto.CreateJobResponse, error) {
	s.createPosterID = posterID
	return s.createResp, s.createErr
}

func (s *stubJobService) ListJobs(_ *gorm.DB) ([]*dto.JobResponse, error) {
	return []*dto.JobResponse{}, nil
}

func (s *stubJobService) GetJob(_ *gorm.DB, _ uint) (*dto.JobResponse, error) {
	return &dto.JobResponse{}, nil
}

func (s *stubJobService) UpdateJob(_ *gorm.DB, _ uint, _ *dto.UpdateJobRequest) error {
	return s.updateErr
}

func (s *stubJobService) DeleteJob(_ *gorm.DB, _ uint) error {
	return s.deleteErr
}

// newTestRouter builds a gin engine with a placeholder db handle in the
// context, mimicking DBMiddleware. Stubs never touch it.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), &gorm.DB{})
	})
	return router
}

func newBaseHandler() *handlers.BaseHandler {
	return handlers.NewBaseHandler(validator.New())
}

func performJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func performRaw(t *testing.T, router *gin.Engine, method, path, rawBody string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(rawBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
