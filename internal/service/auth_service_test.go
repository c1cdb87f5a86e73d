package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agroprod-ws/internal/model"
)

type fakeUserRepo struct {
	users []model.User
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	username = strings.ToLower(username)
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	for i := range r.users {
		if r.users[i].ID == userID {
			r.users[i].Password = hashedPassword
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) ReplaceAll(users []model.User) error {
	r.users = append([]model.User(nil), users...)
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string, tabs []model.Tab) *model.User {
	t.Helper()
	user := &model.User{
		Username:    username,
		FullName:    "Test User",
		Role:        role,
		AllowedTabs: tabs,
		IsActive:    true,
	}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, repo.Create(user))
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "awa", "secret123", model.RoleOperator, []model.Tab{model.TabProduction})
	svc := NewAuthService(repo)

	resp, err := svc.Login("awa", "secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "awa", resp.User.Username)
	assert.Equal(t, []string{string(model.TabProduction)}, resp.Tabs)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "awa", "secret123", model.RoleOperator, nil)
	svc := NewAuthService(repo)

	_, err := svc.Login("awa", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo, "awa", "secret123", model.RoleOperator, nil)
	user.IsActive = false
	require.NoError(t, repo.Update(user))
	svc := NewAuthService(repo)

	_, err := svc.Login("awa", "secret123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestLoginAdminGetsAllTabs(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "boss", "secret123", model.RoleAdmin, nil)
	svc := NewAuthService(repo)

	resp, err := svc.Login("boss", "secret123")
	require.NoError(t, err)
	assert.Len(t, resp.Tabs, len(model.AllTabs))
}

func TestResetPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "awa", "secret123", model.RoleOperator, nil)
	svc := NewAuthService(repo)

	require.NoError(t, svc.ResetPassword("awa", "secret123", "newsecret"))

	_, err := svc.Login("awa", "secret123")
	assert.Error(t, err)
	_, err = svc.Login("awa", "newsecret")
	assert.NoError(t, err)
}

func TestResetPasswordWrongCurrent(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "awa", "secret123", model.RoleOperator, nil)
	svc := NewAuthService(repo)

	err := svc.ResetPassword("awa", "nope", "newsecret")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "awa", "secret123", model.RoleOperator, []model.Tab{model.TabStock})
	svc := NewAuthService(repo)

	login, err := svc.Login("awa", "secret123")
	require.NoError(t, err)

	resp, err := svc.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "awa", resp.User.Username)
	assert.Equal(t, []string{string(model.TabStock)}, resp.Tabs)
}
