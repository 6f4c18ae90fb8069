package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/auth"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/models"
)

// CreateUser inserts a user directly, hashing the raw password the same way
// the registration path does.
func CreateUser(t *testing.T, db *gorm.DB, username, email, password string) *models.User {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err, "failed to hash test password")

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	require.NoError(t, db.Create(user).Error, "failed to create test user %s", username)
	return user
}

// CreateAndLoginUser creates a user and logs in through the API, returning
// the bearer token alongside the record.
func CreateAndLoginUser(t *testing.T, ts *TestServer, username, email, password string) (string, *models.User) {
	user := CreateUser(t, ts.DB, username, email, password)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login must succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateJob inserts a posting directly, bypassing the API.
func CreateJob(t *testing.T, db *gorm.DB, title, company string, postedBy uint) *models.Job {
	job := &models.Job{
		Title:    title,
		Company:  company,
		PostedBy: postedBy,
	}
	require.NoError(t, db.Create(job).Error, "failed to create test job %s", title)
	return job
}
