package dto

import (
	"mime/multipart"
)

const (
	Directory = "designs"

	MessageUploadFailed   = "Fehler beim Hochladen der Datei"
	MessageUploadDisabled = "Upload ist nicht konfiguriert"
	DefaultMaxFileSizeMB  = 5
)

// UploadImageRequest is a multipart upload of one design picture.
type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpeg image/webp image/gif"`
	ImageFile multipart.File        `json:"-"`
}

// UploadDataURLRequest carries a picture inlined as a base64 data url.
type UploadDataURLRequest struct {
	Image string `json:"image"          validate:"required,mimetypes=image/png image/jpeg image/webp image/gif"`
	Name  string `json:"name,omitempty"`
}

type UploadImageResponse struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}
