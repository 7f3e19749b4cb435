package base64

import (
	"encoding/base64"
	"errors"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrNotDataURL = errors.New("not a base64 data url")

// GetContentType returns the media type of a base64 data url, or "" when file is not one.
func GetContentType(file string) string {
	start := len(dataPrefix)
	end := strings.Index(file, base64Marker)

	if !strings.HasPrefix(file, dataPrefix) || end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode splits a data url into its media type and payload.
func Decode(file string) (string, []byte, error) {
	contentType := GetContentType(file)
	if contentType == "" {
		return "", nil, ErrNotDataURL
	}

	payload := file[strings.Index(file, base64Marker)+len(base64Marker):]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err //nolint:wrapcheck
	}

	return contentType, data, nil
}
