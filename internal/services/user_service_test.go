package services_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services"
)

func TestUserService_GetUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := userRepo.add("jane_doe", "jane@example.com", "hash")
	svc := services.NewUserService(userRepo, newFakeJobRepo())

	resp, err := svc.GetUser(nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "jane_doe", resp.Username)
	assert.Equal(t, "jane@example.com", resp.Email)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc := services.NewUserService(newFakeUserRepo(), newFakeJobRepo())

	_, err := svc.GetUser(nil, 42)
	appError := appErr(t, err)
	assert.Equal(t, http.StatusNotFound, appError.HTTPCode)
	assert.Equal(t, "User not found", appError.Message)
}

func TestUserService_ListUsers(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.add("jane_doe", "jane@example.com", "hash")
	userRepo.add("john_doe", "john@example.com", "hash")
	svc := services.NewUserService(userRepo, newFakeJobRepo())

	users, err := svc.ListUsers(nil)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "jane_doe", users[0].Username)
	assert.Equal(t, "john_doe", users[1].Username)
}

func TestUserService_GetUserJobs(t *testing.T) {
	userRepo := newFakeUserRepo()
	jobRepo := newFakeJobRepo()
	jane := userRepo.add("jane_doe", "jane@example.com", "hash")
	john := userRepo.add("john_doe", "john@example.com", "hash")
	jobRepo.add("Jane's Old", "Acme", jane.ID)
	jobRepo.add("John's Only", "Beta", john.ID)
	jobRepo.add("Jane's New", "Acme", jane.ID)
	svc := services.NewUserService(userRepo, jobRepo)

	jobs, err := svc.GetUserJobs(nil, jane.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Jane's New", jobs[0].Title)
	assert.Equal(t, "Jane's Old", jobs[1].Title)
}
