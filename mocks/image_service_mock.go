package mocks

import (
	"github.com/adhilX/Stock-Image-Platform/models"

	"github.com/stretchr/testify/mock"
)

// ImageServiceMock is a testify/mock for services.ImageService.
// We use this to test the HTTP handlers without real business logic.
type ImageServiceMock struct{ mock.Mock }

func (m *ImageServiceMock) SaveImages(userID uint, inputs []models.ImageInput) ([]models.Image, error) {
	args := m.Called(userID, inputs)
	if v := args.Get(0); v != nil {
		return v.([]models.Image), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ImageServiceMock) GetUserImages(userID uint, page, limit int) (*models.PagedImages, error) {
	args := m.Called(userID, page, limit)
	if v := args.Get(0); v != nil {
		return v.(*models.PagedImages), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ImageServiceMock) UpdateImage(id, userID uint, req models.UpdateImageRequest) (*models.Image, error) {
	args := m.Called(id, userID, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Image), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ImageServiceMock) DeleteImage(id, userID uint) error {
	return m.Called(id, userID).Error(0)
}

func (m *ImageServiceMock) UpdateImageOrder(userID uint, updates []models.OrderUpdate) error {
	return m.Called(userID, updates).Error(0)
}
