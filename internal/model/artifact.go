package model

import "time"

// Artifact content types
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeJPEG = "image/jpeg"
)

// Artifact is a transient export blob held in memory until the preview is closed
// or a new export replaces it.
type Artifact struct {
	Token       string    `json:"token"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
