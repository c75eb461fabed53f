package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/EventBookingCore/internal/domain"
	"github.com/stpnv0/EventBookingCore/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		GivenName:     "Ada",
		FamilyName:    "Lovelace",
		Email:         "  ada@example.com ",
		Role:          domain.RoleTeacher,
		EmailVerified: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, domain.RoleTeacher, user.Role)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, "Ada Lovelace", user.FullName())
}

func TestUserService_Create_DefaultRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{GivenName: "Bob", Email: "bob@example.com"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, user.Role)
	assert.False(t, user.EmailVerified)
}

func TestUserService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{name: "empty given name", input: domain.CreateUserInput{Email: "a@example.com"}},
		{name: "invalid email", input: domain.CreateUserInput{GivenName: "A", Email: "not-an-email"}},
		{name: "unknown role", input: domain.CreateUserInput{GivenName: "A", Email: "a@example.com", Role: "JANITOR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockUserRepo(t)
			svc := NewUserService(repo)

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{GivenName: "Ada", Email: "ada@example.com"})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_GetByID(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	expected := &domain.User{ID: "u1", GivenName: "Ada"}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(expected, nil)
	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	user, err := svc.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, expected, user)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List_Error(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background())

	assert.Error(t, err)
}
