package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/gym_checkin_system/internal/models"
	"github.com/shenikar/gym_checkin_system/internal/repository/inmemory"
	"github.com/shenikar/gym_checkin_system/internal/service"
	"github.com/shenikar/gym_checkin_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Success(t *testing.T) {
	sut := service.NewRegisterService(inmemory.NewUserRepository(), newTestLogger(), bcrypt.MinCost)

	user, err := sut.Register(context.Background(), service.RegisterInput{
		Name:     "John Doe",
		Email:    "John@Example.com ",
		Password: "123456",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "john@example.com", user.Email)
}

func TestRegister_HashesPassword(t *testing.T) {
	sut := service.NewRegisterService(inmemory.NewUserRepository(), newTestLogger(), bcrypt.MinCost)

	user, err := sut.Register(context.Background(), service.RegisterInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "123456",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "123456", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("123456")))
}

func TestRegister_SameEmailTwice(t *testing.T) {
	sut := service.NewRegisterService(inmemory.NewUserRepository(), newTestLogger(), bcrypt.MinCost)
	input := service.RegisterInput{Name: "John Doe", Email: "john@example.com", Password: "123456"}

	_, err := sut.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = sut.Register(context.Background(), input)
	require.ErrorIs(t, err, service.ErrUserAlreadyExists)
}

func TestRegister_ConcurrentDuplicateFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)
	sut := service.NewRegisterService(repoMock, newTestLogger(), bcrypt.MinCost)

	repoMock.EXPECT().FindByEmail(gomock.Any(), "john@example.com").Return(nil, nil).Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(service.ErrUserAlreadyExists).Times(1)

	_, err := sut.Register(context.Background(), service.RegisterInput{Name: "John", Email: "john@example.com", Password: "123456"})

	require.ErrorIs(t, err, service.ErrUserAlreadyExists)
}

func TestRegister_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)
	sut := service.NewRegisterService(repoMock, newTestLogger(), bcrypt.MinCost)

	repoMock.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := sut.Register(context.Background(), service.RegisterInput{Email: "a@b.c"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not look up user")
}

func TestRegister_ExistingUserNotOverwritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)
	sut := service.NewRegisterService(repoMock, newTestLogger(), bcrypt.MinCost)

	repoMock.EXPECT().FindByEmail(gomock.Any(), "john@example.com").Return(&models.User{ID: uuid.New()}, nil).Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := sut.Register(context.Background(), service.RegisterInput{Email: "john@example.com", Password: "x"})

	require.ErrorIs(t, err, service.ErrUserAlreadyExists)
}
