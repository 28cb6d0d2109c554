package models

import "time"

// Image is one user-owned gallery entry. The Image field is an opaque
// locator pointing into external media storage; the backend never
// interprets it beyond storing and returning it.
//
// Order drives the display sequence within one user's collection. The
// column is named display_order because "order" is a reserved word in
// most SQL dialects. Ties are allowed; listing breaks them by id
// ascending so the sequence stays deterministic.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_images_user_order,priority:1" json:"userId"`
	Image     string    `gorm:"size:512;not null" json:"image"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Order     int       `gorm:"column:display_order;not null;index:idx_images_user_order,priority:2" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImageInput is one element of a batch upload. Order is a pointer so the
// handler can tell "absent" from zero; absent defaults to the element's
// position in the request array.
type ImageInput struct {
	Image string `json:"image" binding:"required"`
	Title string `json:"title" binding:"required"`
	Order *int   `json:"order"`
}

// SaveImagesRequest is the validated payload for batch image creation.
// min=1 rejects an empty array before any service logic runs.
type SaveImagesRequest struct {
	Images []ImageInput `json:"images" binding:"required,min=1,dive"`
}

// UpdateImageRequest allows partial updates: nil means "no change".
type UpdateImageRequest struct {
	Image *string `json:"image,omitempty"`
	Title *string `json:"title,omitempty"`
}

// OrderUpdate assigns a new display position to one image.
type OrderUpdate struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}

// UpdateOrderRequest is the validated payload for batch reordering.
type UpdateOrderRequest struct {
	Images []OrderUpdate `json:"images" binding:"required,dive"`
}

// ListImagesQuery holds pagination query parameters for the list endpoint.
type ListImagesQuery struct {
	Page  int `form:"page,default=1"`   // 1-based page number
	Limit int `form:"limit,default=20"` // page size; service clamps the range
}

// PagedImages is the response envelope for the list endpoint.
type PagedImages struct {
	Data    []Image `json:"data"`    // current page, sorted by display order
	Total   int64   `json:"total"`   // full count of the user's images
	Page    int     `json:"page"`    // page number actually used (1-based)
	Limit   int     `json:"limit"`   // page size actually used
	HasMore bool    `json:"hasMore"` // true iff more pages exist after this one
}
