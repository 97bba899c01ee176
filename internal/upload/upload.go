// Package upload stores multipart image attachments on disk: receipts for
// income/expense records and user profile images.
package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// MaxFileSize is the upload size cap in bytes (5 MiB).
const MaxFileSize = 5 * 1024 * 1024

// maxPixelWidth bounds stored image dimensions; wider images are downscaled
// in place after save.
const maxPixelWidth = 2000

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/jpg":  true,
}

// Save validates and persists an uploaded image under dir, creating the
// directory on first use. The stored name is prefixed with the current time
// in milliseconds to handle duplicate file names. Returns the stored path.
func Save(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if file.Size > MaxFileSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		return "", apperrors.ErrInvalidFileType
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(file.Filename))
	path := filepath.Join(dir, name)

	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	shrinkLarge(path)
	return path, nil
}

// Remove deletes a stored file. Failures are logged and swallowed: the owning
// row's deletion must not be rolled back over a missing file.
func Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Get().Warnw("failed to remove stored file", "path", path, "error", err)
	}
}

// sanitizeName strips any path components and whitespace from a client
// supplied file name.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.ReplaceAll(base, " ", "_")
}

// shrinkLarge downscales an oversized image in place. Best-effort: a file
// that does not decode is left untouched.
func shrinkLarge(path string) {
	img, err := imaging.Open(path)
	if err != nil {
		return
	}
	if img.Bounds().Dx() <= maxPixelWidth {
		return
	}
	img = imaging.Resize(img, maxPixelWidth, 0, imaging.Lanczos)
	if err := imaging.Save(img, path); err != nil {
		logger.Get().Warnw("failed to downscale uploaded image", "path", path, "error", err)
	}
}
