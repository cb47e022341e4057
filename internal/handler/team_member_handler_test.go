package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/model"
)

func TestRegisterMember_Created(t *testing.T) {
	// Arrange
	router, _, members := setupTest()
	members.On("Register", mock.Anything, "Alice", "alice@example.com").
		Return(&model.TeamMember{ID: 3, Name: "Alice", Email: "alice@example.com"}, true, nil)

	// Act
	resp := serve(router, http.MethodPost, "/api/team-members", `{"name":"Alice","email":"alice@example.com"}`)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["id"])
	members.AssertExpectations(t)
}

func TestRegisterMember_AlreadyExists(t *testing.T) {
	// Arrange
	router, _, members := setupTest()
	members.On("Register", mock.Anything, "Alicia", "alice@example.com").
		Return(&model.TeamMember{ID: 3, Name: "Alice", Email: "alice@example.com"}, false, nil)

	// Act
	resp := serve(router, http.MethodPost, "/api/team-members", `{"name":"Alicia","email":"alice@example.com"}`)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Message string           `json:"message"`
		User    model.TeamMember `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "User already exists", body.Message)
	assert.Equal(t, uint(3), body.User.ID)
	assert.Equal(t, "Alice", body.User.Name)
}

func TestRegisterMember_InvalidInput(t *testing.T) {
	router, _, members := setupTest()

	resp := serve(router, http.MethodPost, "/api/team-members", `{"name":"Alice","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	members.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterMember_StoreFailure(t *testing.T) {
	router, _, members := setupTest()
	members.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(nil, false, assert.AnError)

	resp := serve(router, http.MethodPost, "/api/team-members", `{"name":"Alice","email":"alice@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Error inserting team member", resp.Body.String())
}

func TestListMembers(t *testing.T) {
	router, _, members := setupTest()
	members.On("List", mock.Anything).Return([]model.TeamMember{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, nil)

	resp := serve(router, http.MethodGet, "/api/team-members", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	var got []model.TeamMember
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
