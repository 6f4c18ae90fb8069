package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jagadeeshroc/backend-of-Achyuta/test/helpers"
)

func TestRegister_Success(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/register", "", map[string]interface{}{
		"username": "jane_doe",
		"email":    "jane@example.com",
		"password": "secret99",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		Success bool `json:"success"`
		UserID  uint `json:"userId"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, resp.Success)
	require.NotZero(t, resp.UserID)

	// The account is retrievable, and the hash never leaves the server.
	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/users/%d", resp.UserID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "jane_doe")
	assert.NotContains(t, body, "secret99")
	assert.NotContains(t, body, "$2a$")
}

func TestRegister_ValidationAggregatesAllViolations(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "ab",
		"email":    "not-an-email",
		"password": "abc",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var resp struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Contains(t, resp.Error.Details, "username")
	assert.Contains(t, resp.Error.Details, "email")
	assert.Contains(t, resp.Error.Details, "password")
}

func TestRegister_DuplicateFieldsAreNamed(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	helpers.CreateUser(t, ts.DB, "jane_doe", "jane@example.com", "secret99")

	cases := []struct {
		name     string
		username string
		email    string
		message  string
	}{
		{"username taken", "jane_doe", "fresh@example.com", "Username already exists"},
		{"email taken", "fresh_user", "jane@example.com", "Email already exists"},
		{"both taken", "jane_doe", "jane@example.com", "Username and Email already exist"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, body := ts.SendRequest(t, http.MethodPost, "/register", "", map[string]interface{}{
				"username": tc.username,
				"email":    tc.email,
				"password": "secret99",
			})
			assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
			assert.Contains(t, body, tc.message)
		})
	}
}

func TestRegister_ConcurrentSameUsername(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	payload, err := json.Marshal(map[string]interface{}{
		"username": "race_user",
		"email":    "race@example.com",
		"password": "secret99",
	})
	require.NoError(t, err)

	const attempts = 2
	statuses := make(chan int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := ts.Server.Client().Post(
				ts.Server.URL+"/register", "application/json", bytes.NewReader(payload))
			if err != nil {
				statuses <- 0
				return
			}
			res.Body.Close()
			statuses <- res.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	var created, rejected int
	for status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusBadRequest:
			rejected++
		default:
			t.Fatalf("unexpected status %d", status)
		}
	}
	assert.Equal(t, 1, created, "exactly one registration wins")
	assert.Equal(t, 1, rejected, "the loser gets a duplicate rejection")
}

func TestLogin_Success(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	user := helpers.CreateUser(t, ts.DB, "jane_doe", "jane@example.com", "secret99")

	res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"username": "jane_doe",
		"password": "secret99",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Success  bool   `json:"success"`
		UserID   uint   `json:"userId"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, "jane_doe", resp.Username)
	assert.Equal(t, fmt.Sprint(user.ID), resp.Token)
}

func TestLogin_FailuresShareOneShape(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)
	helpers.CreateUser(t, ts.DB, "jane_doe", "jane@example.com", "secret99")

	resWrong, bodyWrong := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"username": "jane_doe",
		"password": "wrong",
	})
	resUnknown, bodyUnknown := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"username": "nobody",
		"password": "secret99",
	})

	assert.Equal(t, http.StatusUnauthorized, resWrong.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, resUnknown.StatusCode)
	assert.JSONEq(t, bodyWrong, bodyUnknown, "wrong password and unknown user must be indistinguishable")
	assert.Contains(t, bodyWrong, "Invalid credentials")
}
