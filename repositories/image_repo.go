package repositories

import (
	"github.com/adhilX/Stock-Image-Platform/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ImageRepository defines the image-store operations the image service
// needs. Ownership is NOT checked here; that belongs to the service layer.
type ImageRepository interface {
	Create(img *models.Image) error
	FindByUser(userID uint, offset, limit int) ([]models.Image, int64, error)
	FindByID(id uint) (*models.Image, error)
	UpdateFields(id uint, fields map[string]any) (*models.Image, error)
	UpdateOrder(userID uint, updates []models.OrderUpdate) error
	DeleteByID(id uint) error
}

type imageRepo struct{ db *gorm.DB }

// NewImageRepository injects *gorm.DB and returns the interface.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepo{db: db}
}

// Create inserts a new image row; GORM populates the ID on success.
// Order values are stored as given: no uniqueness or contiguity checks.
func (r *imageRepo) Create(img *models.Image) error {
	return r.db.Create(img).Error
}

// FindByUser returns one page of a user's images sorted by display order
// plus the user's total image count. Ties on display_order break by id
// ascending so pagination stays deterministic.
func (r *imageRepo) FindByUser(userID uint, offset, limit int) ([]models.Image, int64, error) {
	// Non-nil so an empty page serializes as [] rather than null.
	items := make([]models.Image, 0)
	var total int64
	if err := r.db.Model(&models.Image{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.
		Where("user_id = ?", userID).
		Order("display_order ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).
		Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *imageRepo) FindByID(id uint) (*models.Image, error) {
	var img models.Image
	if err := r.db.First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

// UpdateFields merges the supplied columns (title and/or locator) into the
// row and returns the updated record. Existence is decided by the re-fetch,
// not RowsAffected: MySQL reports 0 affected rows when an UPDATE sets
// columns to their current values, and a no-op resubmit is not a missing
// row. A genuinely absent id surfaces as ErrRecordNotFound from the fetch.
func (r *imageRepo) UpdateFields(id uint, fields map[string]any) (*models.Image, error) {
	if err := r.db.Model(&models.Image{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// UpdateOrder applies each {id, order} pair independently and concurrently.
// Every UPDATE is scoped by user_id, so ids belonging to other users are
// skipped silently. The batch is deliberately not transactional: a failure
// partway through leaves the already-applied updates committed, and a
// concurrent reader may observe a mixed old/new order.
func (r *imageRepo) UpdateOrder(userID uint, updates []models.OrderUpdate) error {
	g := new(errgroup.Group)
	for _, u := range updates {
		u := u
		g.Go(func() error {
			return r.db.Model(&models.Image{}).
				Where("id = ? AND user_id = ?", u.ID, userID).
				Update("display_order", u.Order).
				Error
		})
	}
	return g.Wait()
}

// DeleteByID removes an image row by primary key. Deleting an id that does
// not exist succeeds silently, so the operation is idempotent.
func (r *imageRepo) DeleteByID(id uint) error {
	return r.db.Delete(&models.Image{}, id).Error
}
