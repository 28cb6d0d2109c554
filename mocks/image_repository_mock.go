package mocks

import (
	"github.com/adhilX/Stock-Image-Platform/models"

	"github.com/stretchr/testify/mock"
)

// ImageRepositoryMock is a testify/mock for repositories.ImageRepository.
type ImageRepositoryMock struct{ mock.Mock }

func (m *ImageRepositoryMock) Create(img *models.Image) error {
	return m.Called(img).Error(0)
}

func (m *ImageRepositoryMock) FindByUser(userID uint, offset, limit int) ([]models.Image, int64, error) {
	args := m.Called(userID, offset, limit)
	var items []models.Image
	if v := args.Get(0); v != nil {
		items = v.([]models.Image)
	}
	var total int64
	if v := args.Get(1); v != nil {
		total = v.(int64)
	}
	return items, total, args.Error(2)
}

func (m *ImageRepositoryMock) FindByID(id uint) (*models.Image, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Image), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ImageRepositoryMock) UpdateFields(id uint, fields map[string]any) (*models.Image, error) {
	args := m.Called(id, fields)
	if v := args.Get(0); v != nil {
		return v.(*models.Image), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ImageRepositoryMock) UpdateOrder(userID uint, updates []models.OrderUpdate) error {
	return m.Called(userID, updates).Error(0)
}

func (m *ImageRepositoryMock) DeleteByID(id uint) error {
	return m.Called(id).Error(0)
}
