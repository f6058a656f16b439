package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(users ...models.User) (*userServiceImpl, *fakeRepo[models.User]) {
	repo := newFakeRepo(userColumns, "user_id").seed(users...)
	return newUserService(repo, bcrypt.MinCost, zap.NewNop()), repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, repo := newTestUserService()

	user, svcErr := svc.Register(context.Background(), &models.UserCreateRequest{
		Email: "ann@example.com", Username: "ann", Password: "s3cret",
	})
	require.Nil(t, svcErr)
	assert.Equal(t, uint(1), user.UserID)
	require.Len(t, repo.rows, 1)

	stored := repo.rows[0].Password
	assert.NotEqual(t, "s3cret", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("s3cret")))
	assert.Equal(t, 1, repo.transactions)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, repo := newTestUserService(models.User{UserID: 1, Email: "ann@example.com", Username: "ann"})

	_, svcErr := svc.Register(context.Background(), &models.UserCreateRequest{
		Email: "ann@example.com", Username: "other", Password: "pw",
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Email already registered", svcErr.Message)
	assert.Len(t, repo.rows, 1)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, _ := newTestUserService(models.User{UserID: 1, Email: "ann@example.com", Username: "ann"})

	_, svcErr := svc.Register(context.Background(), &models.UserCreateRequest{
		Email: "bob@example.com", Username: "ann", Password: "pw",
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Username already taken", svcErr.Message)
}

func TestRegister_ConcurrentDuplicate(t *testing.T) {
	svc, repo := newTestUserService()
	repo.createErr = fmt.Errorf("create users: %w", repository.ErrDuplicate)

	_, svcErr := svc.Register(context.Background(), &models.UserCreateRequest{
		Email: "ann@example.com", Username: "ann", Password: "pw",
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Email or username already registered", svcErr.Message)
}

func TestRegister_HashFailure(t *testing.T) {
	svc, repo := newTestUserService()

	// bcrypt refuses passwords longer than 72 bytes.
	_, svcErr := svc.Register(context.Background(), &models.UserCreateRequest{
		Email: "ann@example.com", Username: "ann", Password: strings.Repeat("x", 73),
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.Equal(t, "Error hashing password", svcErr.Message)
	assert.Empty(t, repo.rows)
}

func TestCreate_GoesThroughRegistration(t *testing.T) {
	svc, repo := newTestUserService()
	var crud CrudService[models.User] = svc

	_, svcErr := crud.Create(context.Background(), models.UserCreateRequest{
		Email: "ann@example.com", Username: "ann", Password: "pw",
	})
	require.Nil(t, svcErr)
	assert.NotEqual(t, "pw", repo.rows[0].Password)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestUserService(
		models.User{UserID: 7, Email: "ann@example.com", Username: "ann", Password: hashed(t, "s3cret")},
		models.User{UserID: 8, Email: "broken@example.com", Username: "broken", Password: "not-a-bcrypt-hash"},
	)

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
		wantMsg    string
	}{
		{"success", "ann@example.com", "s3cret", http.StatusOK, "Login successful"},
		{"wrong password", "ann@example.com", "nope", http.StatusUnauthorized, "Invalid email or password"},
		{"unknown email", "who@example.com", "s3cret", http.StatusUnauthorized, "Invalid email or password"},
		{"corrupt hash", "broken@example.com", "s3cret", http.StatusInternalServerError, "Error verifying password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, svcErr := svc.Login(context.Background(), &models.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, svcErr)
				assert.Equal(t, tt.wantMsg, resp.Message)
				assert.Equal(t, uint(7), resp.UserID)
				assert.Equal(t, "ann", resp.Username)
				return
			}
			require.NotNil(t, svcErr)
			assert.Equal(t, tt.wantStatus, svcErr.StatusCode)
			assert.Equal(t, tt.wantMsg, svcErr.Message)
		})
	}
}

func TestUpdate_RehashesPassword(t *testing.T) {
	svc, repo := newTestUserService(models.User{UserID: 1, Email: "ann@example.com", Username: "ann", Password: hashed(t, "old")})

	var req models.UserUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"password":"new-pass","phone":"555-0100"}`), &req))

	user, svcErr := svc.Update(context.Background(), repository.ByID("user_id", 1), req)
	require.Nil(t, svcErr)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "555-0100", *user.Phone)

	stored := repo.rows[0].Password
	assert.NotEqual(t, "new-pass", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("new-pass")))
}

func TestUpdate_WithoutPasswordKeepsHash(t *testing.T) {
	original := hashed(t, "old")
	svc, repo := newTestUserService(models.User{UserID: 1, Email: "ann@example.com", Username: "ann", Password: original})

	var req models.UserUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"username":"annie"}`), &req))

	user, svcErr := svc.Update(context.Background(), repository.ByID("user_id", 1), req)
	require.Nil(t, svcErr)
	assert.Equal(t, "annie", user.Username)
	assert.Equal(t, original, repo.rows[0].Password)
}
