package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agroprod-ws/internal/model"
)

func TestCreateUserLowercasesUsername(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.CreateUser(&CreateUserRequest{
		Username: "  Moussa ",
		Password: "secret123",
		FullName: "Moussa Diop",
		Role:     model.RoleOperator,
	}, "admin-id")
	require.NoError(t, err)

	assert.Equal(t, "moussa", user.Username)
	assert.True(t, user.IsActive)
	assert.Equal(t, "admin-id", user.CreatedBy)
	assert.True(t, user.CheckPassword("secret123"))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	req := &CreateUserRequest{
		Username: "moussa",
		Password: "secret123",
		FullName: "Moussa Diop",
		Role:     model.RoleOperator,
	}
	_, err := svc.CreateUser(req, "admin-id")
	require.NoError(t, err)

	// Case differences collapse onto the same account.
	req.Username = "MOUSSA"
	_, err = svc.CreateUser(req, "admin-id")
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestCreateUserRejectsUnknownTab(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.CreateUser(&CreateUserRequest{
		Username:    "moussa",
		Password:    "secret123",
		FullName:    "Moussa Diop",
		Role:        model.RoleOperator,
		AllowedTabs: []model.Tab{"bogus"},
	}, "admin-id")
	assert.Error(t, err)
}

func TestCreateUserRejectsBadRole(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.CreateUser(&CreateUserRequest{
		Username: "moussa",
		Password: "secret123",
		FullName: "Moussa Diop",
		Role:     "SUPERVISOR",
	}, "admin-id")
	assert.Error(t, err)
}

func TestUpdateUserTabs(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.CreateUser(&CreateUserRequest{
		Username:    "moussa",
		Password:    "secret123",
		FullName:    "Moussa Diop",
		Role:        model.RoleOperator,
		AllowedTabs: []model.Tab{model.TabProduction},
	}, "admin-id")
	require.NoError(t, err)

	updated, err := svc.UpdateUserTabs(user.ID, []model.Tab{model.TabStock, model.TabInsights}, "admin-id")
	require.NoError(t, err)

	assert.Equal(t, []model.Tab{model.TabStock, model.TabInsights}, updated.AllowedTabs)
}

func TestUpdateUserTogglesActive(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user, err := svc.CreateUser(&CreateUserRequest{
		Username: "moussa",
		Password: "secret123",
		FullName: "Moussa Diop",
		Role:     model.RoleOperator,
	}, "admin-id")
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateUser(user.ID, &UpdateUserRequest{
		Username: "moussa",
		FullName: "Moussa Diop",
		Role:     model.RoleOperator,
		IsActive: &inactive,
	}, "admin-id")
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	// Password untouched when not provided.
	assert.True(t, updated.CheckPassword("secret123"))
}

func TestDeleteUserUnknownID(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})
	assert.ErrorIs(t, svc.DeleteUser(uuid.New()), ErrUserNotFound)
}
