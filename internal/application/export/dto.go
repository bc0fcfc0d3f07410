package export

import (
	"time"
)

// Delivery modes for an export
const (
	DeliveryDownload = "download"
	DeliveryStorage  = "storage"
	DeliveryEmail    = "email"
)

// ExportRequest asks for a set of report sections in one file
type ExportRequest struct {
	Sections []string `json:"sections" binding:"required,min=1,dive,required"`
	Format   string   `json:"format" binding:"omitempty,oneof=csv json xlsx"`
	Delivery string   `json:"delivery" binding:"omitempty,oneof=download storage email"`
	Email    string   `json:"email" binding:"omitempty,email"`
}

// StoredExportResponse points at an export uploaded to object storage
type StoredExportResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	Filename  string    `json:"filename"`
}

// EmailedExportResponse confirms an export was mailed
type EmailedExportResponse struct {
	To       string `json:"to"`
	Filename string `json:"filename"`
}
