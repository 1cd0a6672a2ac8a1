package mockapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	errUnsupportedFile = unprocessable("Format file tidak didukung")
	errFileTooLarge    = unprocessable("Ukuran file maksimal 5 MB")
)

var (
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
	proofExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".pdf"}
)

// saveUpload stores the multipart file in field under dir and returns its storage path.
// A missing file is not an error and returns nil.
func (h *Handler) saveUpload(c echo.Context, field, dir string, allowed []string) (*string, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errInvalidPayload
	}

	ext := strings.ToLower(path.Ext(header.Filename))
	if !slices.Contains(allowed, ext) {
		return nil, errUnsupportedFile
	}
	if header.Size > maxUploadBytes {
		return nil, errFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", field, err)
	}

	stored := path.Join(dir, uuid.NewString()+ext)
	h.store.PutAsset(stored, data)
	return &stored, nil
}

// ServeAsset returns an uploaded file
func (h *Handler) ServeAsset(c echo.Context) error {
	name := strings.TrimPrefix(c.Param("*"), "/")
	data, ok := h.store.Asset(name)
	if !ok {
		return notFound(c, "File")
	}

	// sniffed from the content, the stored name only carries the uploader's extension
	return c.Blob(http.StatusOK, mimetype.Detect(data).String(), data)
}
