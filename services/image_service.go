package services // Use-case layer; orchestrates business rules, not HTTP/DB details.

import (
	"fmt"

	"github.com/adhilX/Stock-Image-Platform/models"
	"github.com/adhilX/Stock-Image-Platform/repositories"
	"github.com/adhilX/Stock-Image-Platform/utils/redislog"

	"golang.org/x/sync/errgroup"
)

// ImageService is the only place image ownership is enforced. Handlers pass
// in the authenticated user's ID; the repository never sees authorization.
type ImageService interface {
	SaveImages(userID uint, inputs []models.ImageInput) ([]models.Image, error)
	GetUserImages(userID uint, page, limit int) (*models.PagedImages, error)
	UpdateImage(id, userID uint, req models.UpdateImageRequest) (*models.Image, error)
	DeleteImage(id, userID uint) error
	UpdateImageOrder(userID uint, updates []models.OrderUpdate) error
}

type imageService struct {
	repo repositories.ImageRepository
	log  *redislog.Logger // nil-safe no-op when not configured
}

// NewImageService constructs the service with its dependencies injected.
func NewImageService(repo repositories.ImageRepository, rlog *redislog.Logger) ImageService {
	return &imageService{repo: repo, log: rlog}
}

// SaveImages attaches the caller's userID to every input and creates the
// records concurrently, one goroutine per image. Results are collected
// positionally, so the returned slice matches the input order even though
// creations land in whatever order the database answers. The batch is not
// atomic: when one create fails, creates that already committed stay.
func (s *imageService) SaveImages(userID uint, inputs []models.ImageInput) ([]models.Image, error) {
	results := make([]models.Image, len(inputs))

	g := new(errgroup.Group)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			order := i // default display position: slot in the request array
			if in.Order != nil {
				order = *in.Order
			}
			img := models.Image{
				UserID: userID,
				Image:  in.Image,
				Title:  in.Title,
				Order:  order,
			}
			if err := s.repo.Create(&img); err != nil {
				return err
			}
			results[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("save images batch error", map[string]string{
			"user_id": fmt.Sprint(userID), "count": fmt.Sprint(len(inputs)), "err": err.Error(),
		})
		return nil, err
	}

	s.log.Info("images saved", map[string]string{
		"user_id": fmt.Sprint(userID), "count": fmt.Sprint(len(results)),
	})
	return results, nil
}

// GetUserImages returns one page of the caller's images plus pagination
// metadata. Page and limit are sanitized here so the repository always
// receives a valid offset/limit pair.
func (s *imageService) GetUserImages(userID uint, page, limit int) (*models.PagedImages, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	items, total, err := s.repo.FindByUser(userID, offset, limit)
	if err != nil {
		s.log.Error("list images db error", map[string]string{
			"user_id": fmt.Sprint(userID), "err": err.Error(),
		})
		return nil, err
	}

	return &models.PagedImages{
		Data:    items,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: int64(offset+len(items)) < total,
	}, nil
}

// UpdateImage merges the supplied title/locator into the image after
// verifying the caller owns it.
func (s *imageService) UpdateImage(id, userID uint, req models.UpdateImageRequest) (*models.Image, error) {
	img, err := s.repo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	if img.UserID != userID {
		s.log.Warn("update image denied", map[string]string{
			"image_id": fmt.Sprint(id), "owner": fmt.Sprint(img.UserID), "caller": fmt.Sprint(userID),
		})
		return nil, ErrNotOwner
	}

	fields := map[string]any{}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if len(fields) == 0 {
		return img, nil // nothing to change
	}

	updated, err := s.repo.UpdateFields(id, fields)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return updated, nil
}

// DeleteImage removes an image after the same ownership check as update.
// The store delete itself is idempotent; the 404 for a missing id comes
// from the lookup here.
func (s *imageService) DeleteImage(id, userID uint) error {
	img, err := s.repo.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return ErrImageNotFound
		}
		return err
	}
	if img.UserID != userID {
		s.log.Warn("delete image denied", map[string]string{
			"image_id": fmt.Sprint(id), "owner": fmt.Sprint(img.UserID), "caller": fmt.Sprint(userID),
		})
		return ErrNotOwner
	}
	return s.repo.DeleteByID(id)
}

// UpdateImageOrder delegates the batch to the store. Scoping by userID in
// the store's WHERE clause is what keeps callers from reordering other
// users' images; ids outside the caller's collection are skipped silently.
func (s *imageService) UpdateImageOrder(userID uint, updates []models.OrderUpdate) error {
	if err := s.repo.UpdateOrder(userID, updates); err != nil {
		s.log.Error("reorder batch error", map[string]string{
			"user_id": fmt.Sprint(userID), "count": fmt.Sprint(len(updates)), "err": err.Error(),
		})
		return err
	}
	s.log.Info("images reordered", map[string]string{
		"user_id": fmt.Sprint(userID), "count": fmt.Sprint(len(updates)),
	})
	return nil
}
