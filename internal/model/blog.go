package model

import "io"

// Blog categories
const (
	BlogCategoryMain    = "Main"
	BlogCategoryContent = "Content"
)

type Blog struct {
	ID          string     `json:"id"`
	Category    string     `json:"category" validate:"required,oneof=Main Content"`
	IsPublished bool       `json:"is_published"`
	PublishedAt string     `json:"published_at,omitempty"` // YYYY-MM-DD
	Items       []BlogItem `json:"items" validate:"required,min=1,dive"`
}

type BlogItem struct {
	Title       string      `json:"title" validate:"required"`
	Link        string      `json:"link,omitempty"`
	Content     string      `json:"content" validate:"required"`
	Subcontents []string    `json:"subcontents"`
	Images      []ImageMeta `json:"images,omitempty"`
}

// ImageMeta is preview metadata only; the binary itself lives in an
// Attachment so the serializable blog record never carries file bytes.
type ImageMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Attachment is an owned binary bound to a blog item by index. The
// multipart field naming is applied at submit time, not here.
type Attachment struct {
	Item        int
	Name        string
	ContentType string
	Content     io.Reader
}
