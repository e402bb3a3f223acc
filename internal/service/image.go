package service

import (
	"errors"
	"fmt"
	"net/http"
)

// MaxProfilePicBytes caps the size of a stored profile picture.
const MaxProfilePicBytes = 2 << 20

var (
	ErrUnsupportedImage = errors.New("profile picture must be a PNG, JPEG, GIF or WebP image")
	ErrImageTooLarge    = fmt.Errorf("profile picture exceeds %d bytes", MaxProfilePicBytes)
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// DetectImageType sniffs the content type of a stored or uploaded picture.
// It returns ErrUnsupportedImage for anything that is not an allowed image.
func DetectImageType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrUnsupportedImage
	}
	contentType := http.DetectContentType(data)
	if !allowedImageTypes[contentType] {
		return "", ErrUnsupportedImage
	}
	return contentType, nil
}

// ValidateProfilePic checks size and type before a picture is written.
func ValidateProfilePic(data []byte) (string, error) {
	if len(data) > MaxProfilePicBytes {
		return "", ErrImageTooLarge
	}
	return DetectImageType(data)
}
