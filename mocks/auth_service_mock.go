package mocks

import (
	"github.com/adhilX/Stock-Image-Platform/models"

	"github.com/stretchr/testify/mock"
)

// AuthServiceMock is a testify/mock for services.AuthService.
type AuthServiceMock struct{ mock.Mock }

func (m *AuthServiceMock) Register(req models.RegisterRequest) (*models.User, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuthServiceMock) Login(req models.LoginRequest) (*models.User, string, string, error) {
	args := m.Called(req)
	var u *models.User
	if v := args.Get(0); v != nil {
		u = v.(*models.User)
	}
	return u, args.String(1), args.String(2), args.Error(3)
}

func (m *AuthServiceMock) Refresh(refreshToken string) (string, string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *AuthServiceMock) Logout(refreshToken string) error {
	return m.Called(refreshToken).Error(0)
}

func (m *AuthServiceMock) ChangePassword(userID uint, currentPassword, newPassword string) error {
	return m.Called(userID, currentPassword, newPassword).Error(0)
}

func (m *AuthServiceMock) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}
